package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"Backend-Hostel-Billing/src/controllers"
	"Backend-Hostel-Billing/src/middleware"
	"Backend-Hostel-Billing/src/utils"
	"Backend-Hostel-Billing/src/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// NewApp สร้าง fiber app พร้อม views, middleware และทุก route
func NewApp(h *controllers.Handler, adminGate fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Hostel Billing",
		Views:        views.NewEngine(),
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestLogger())

	InitRoutes(app, h, adminGate)
	return app
}

func InitRoutes(app *fiber.App, h *controllers.Handler, adminGate fiber.Handler) {
	authRoutes(app, h)
	studentRoutes(app, h)
	adminRoutes(app, h, adminGate)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

// errorHandler ตอบ JSON สำหรับ /api และหน้า error สำหรับหน้าเว็บ
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return utils.HandleError(c, code, message)
	}

	if renderErr := c.Status(code).Render("error", fiber.Map{
		"ErrorCode":    code,
		"ErrorTitle":   http.StatusText(code),
		"ErrorMessage": message,
	}); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
