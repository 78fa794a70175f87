package controllers

import (
	"Backend-Hostel-Billing/src/middleware"
	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/services/billing"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) currentStudent(c *fiber.Ctx) (*models.StudentRecord, error) {
	regNo, _ := c.Locals(middleware.LocalRegNo).(string)
	rec, err := h.Records.Get(c.UserContext(), regNo)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return rec, nil
}

// Dashboard - ข้อมูลและยอดค่าใช้จ่ายของนักศึกษาที่ login อยู่
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	rec, err := h.currentStudent(c)
	if err != nil {
		return err
	}
	return c.Render("dashboard", fiber.Map{
		"Student": rec,
		"Totals":  billing.CalculateRecord(rec),
	})
}

// StudentSummary is the JSON shape of GET /api/me.
type StudentSummary struct {
	Record *models.StudentRecord `json:"record"`
	Totals billing.Totals        `json:"totals"`
}

// GetMe godoc
// @Summary Current student's record
// @Description Record and computed totals of the logged-in student
// @Tags students
// @Produce json
// @Success 200 {object} controllers.StudentSummary
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/me [get]
func (h *Handler) GetMe(c *fiber.Ctx) error {
	rec, err := h.currentStudent(c)
	if err != nil {
		return err
	}
	return c.JSON(StudentSummary{Record: rec, Totals: billing.CalculateRecord(rec)})
}
