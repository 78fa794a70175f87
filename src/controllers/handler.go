package controllers

import (
	"errors"

	"Backend-Hostel-Billing/src/services/records"
	"Backend-Hostel-Billing/src/services/reports"
	"Backend-Hostel-Billing/src/services/sessions"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler groups the dependencies shared by every page.
type Handler struct {
	Records  *records.Service
	Sessions sessions.Store
	Exporter *reports.Exporter
	// Secret signs the session cookie.
	Secret []byte
}

func NewHandler(rs *records.Service, ss sessions.Store, exporter *reports.Exporter, secret []byte) *Handler {
	return &Handler{Records: rs, Sessions: ss, Exporter: exporter, Secret: secret}
}

var validate = validator.New()

// parseForm อ่านฟอร์มและตรวจสอบฟิลด์ที่จำเป็น
func parseForm(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return validate.Struct(out)
}

// toHTTPError maps record errors onto HTTP status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, records.ErrStudentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	case errors.Is(err, records.ErrInvalidAmount),
		errors.Is(err, records.ErrUnknownField),
		errors.Is(err, records.ErrFieldNotEditable):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
