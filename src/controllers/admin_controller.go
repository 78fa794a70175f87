package controllers

import (
	"errors"

	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/services/billing"
	"Backend-Hostel-Billing/src/services/records"

	"github.com/gofiber/fiber/v2"
)

type adminRow struct {
	Record *models.StudentRecord
	Totals billing.Totals
}

// renderAdmin แสดงรายการนักศึกษาทั้งหมด
func (h *Handler) renderAdmin(c *fiber.Ctx, status int, errMsg string) error {
	recs, err := h.Records.List(c.UserContext())
	if err != nil {
		return err
	}

	var columns []string
	seen := map[string]bool{}
	rows := make([]adminRow, 0, len(recs))
	for _, rec := range recs {
		for _, col := range rec.Columns() {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
		rows = append(rows, adminRow{Record: rec, Totals: billing.CalculateRecord(rec)})
	}
	if len(columns) == 0 {
		columns = models.DefaultColumns()
	}

	editable := make([]string, 0, len(columns))
	for _, col := range columns {
		if col != models.ColRegNo {
			editable = append(editable, col)
		}
	}

	return c.Status(status).Render("admin", fiber.Map{
		"Columns":  columns,
		"Editable": editable,
		"Rows":     rows,
		"Error":    errMsg,
	})
}

// AdminPage - GET /admin
func (h *Handler) AdminPage(c *fiber.Ctx) error {
	return h.renderAdmin(c, fiber.StatusOK, "")
}

// UpdateField - POST /admin แก้ไขฟิลด์เดียวของนักศึกษาหนึ่งคน
func (h *Handler) UpdateField(c *fiber.Ctx) error {
	var req models.FieldUpdateRequest
	if err := parseForm(c, &req); err != nil {
		return h.renderAdmin(c, fiber.StatusBadRequest, "Reg No and field are required")
	}

	err := h.Records.UpdateField(c.UserContext(), req.Reg, req.Field, req.Value)
	switch {
	case err == nil:
		return h.renderAdmin(c, fiber.StatusOK, "")
	case errors.Is(err, records.ErrUnknownField),
		errors.Is(err, records.ErrFieldNotEditable),
		errors.Is(err, records.ErrInvalidAmount):
		return h.renderAdmin(c, fiber.StatusBadRequest, err.Error())
	default:
		return toHTTPError(err)
	}
}

// RecordPayment - POST /payment เพิ่มยอดชำระให้นักศึกษา
func (h *Handler) RecordPayment(c *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := parseForm(c, &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Reg No and amount are required")
	}

	amount, err := records.ParseAmount(req.Amount)
	if err != nil {
		return toHTTPError(err)
	}
	if err := h.Records.AddPayment(c.UserContext(), req.Reg, amount); err != nil {
		return toHTTPError(err)
	}
	return c.Redirect("/admin")
}
