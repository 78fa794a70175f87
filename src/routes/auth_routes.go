package routes

import (
	"Backend-Hostel-Billing/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes หน้า login ของนักศึกษา
func authRoutes(app *fiber.App, h *controllers.Handler) {
	app.Get("/", h.ShowLogin) // 🔐 login form
	app.Post("/", h.Login)
}
