package routes

import (
	"Backend-Hostel-Billing/src/controllers"
	"Backend-Hostel-Billing/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes เส้นทางที่ต้อง login ก่อน
func studentRoutes(app *fiber.App, h *controllers.Handler) {
	requireStudent := middleware.RequireStudent(h.Sessions, h.Secret)
	app.Get("/dashboard", requireStudent, h.Dashboard) // ยอดค้างชำระ / เงินคืน
	app.Get("/export", requireStudent, h.ExportBill)   // ดาวน์โหลดใบแจ้งหนี้ PDF

	api := app.Group("/api")
	api.Use(middleware.RequireStudentAPI(h.Sessions, h.Secret))
	api.Get("/me", h.GetMe)
}
