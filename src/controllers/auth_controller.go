package controllers

import (
	"errors"
	"log"

	"Backend-Hostel-Billing/src/middleware"
	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/services/records"
	"Backend-Hostel-Billing/src/utils"

	"github.com/gofiber/fiber/v2"
)

const loginError = "Invalid login"

// ShowLogin - หน้า login ของนักศึกษา
func (h *Handler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login - ตรวจสอบ Reg No + DOB แล้วสร้าง session
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := parseForm(c, &req); err != nil {
		return c.Render("login", fiber.Map{"Error": loginError})
	}

	rec, err := h.Records.Login(c.UserContext(), req.Reg, req.DOB)
	if err != nil {
		if errors.Is(err, records.ErrInvalidCredentials) {
			log.Printf("⚠️ failed login for %q from %s", req.Reg, c.IP())
			return c.Render("login", fiber.Map{"Error": loginError})
		}
		return err
	}

	sess, err := h.Sessions.Create(c.UserContext(), rec.RegNo())
	if err != nil {
		return err
	}
	token, err := utils.GenerateSessionToken(h.Secret, sess)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	log.Printf("✅ %s logged in", rec.RegNo())
	return c.Redirect("/dashboard")
}
