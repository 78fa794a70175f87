package routes

import (
	"Backend-Hostel-Billing/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes หน้าจัดการข้อมูลนักศึกษาและบันทึกการชำระเงิน
func adminRoutes(app *fiber.App, h *controllers.Handler, gate fiber.Handler) {
	app.Get("/admin", gate, h.AdminPage)        // รายชื่อทั้งหมด
	app.Post("/admin", gate, h.UpdateField)     // แก้ไขฟิลด์
	app.Post("/payment", gate, h.RecordPayment) // บันทึกการชำระเงิน
}
