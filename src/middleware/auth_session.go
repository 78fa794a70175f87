package middleware

import (
	"errors"

	"Backend-Hostel-Billing/src/services/sessions"
	"Backend-Hostel-Billing/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie ชื่อ cookie ที่เก็บ token ของนักศึกษา
const SessionCookie = "hostel_session"

// LocalRegNo is the c.Locals key holding the authenticated Reg No.
const LocalRegNo = "regNo"

var errNoSession = errors.New("no session")

func resolveSession(c *fiber.Ctx, store sessions.Store, secret []byte) (string, error) {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return "", errNoSession
	}

	claims, err := utils.ParseSessionToken(secret, token)
	if err != nil {
		return "", err
	}

	sess, err := store.Get(c.UserContext(), claims.SessionID)
	if err != nil {
		return "", err
	}
	if sess.RegNo != claims.RegNo {
		return "", errNoSession
	}
	return sess.RegNo, nil
}

// RequireStudent redirects anonymous visitors to the login page.
func RequireStudent(store sessions.Store, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		regNo, err := resolveSession(c, store, secret)
		if err != nil {
			return c.Redirect("/")
		}
		c.Locals(LocalRegNo, regNo)
		return c.Next()
	}
}

// RequireStudentAPI answers 401 instead of redirecting.
func RequireStudentAPI(store sessions.Store, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		regNo, err := resolveSession(c, store, secret)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Not logged in")
		}
		c.Locals(LocalRegNo, regNo)
		return c.Next()
	}
}
