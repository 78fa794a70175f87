package utils

import (
	"Backend-Hostel-Billing/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError ตอบกลับเป็น JSON {status, message} ด้วย status code ที่ให้มา
// An empty message falls back to the standard HTTP status text.
func HandleError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = fiber.ErrInternalServerError.Message
		if e := fiber.NewError(status); e.Message != "" {
			message = e.Message
		}
	}
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
