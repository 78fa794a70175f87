package middleware

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"
)

// RequireAdmin puts the admin pages behind HTTP basic auth when a user and a
// bcrypt password hash are configured. Otherwise the pages stay open.
func RequireAdmin(user, passwordHash string) fiber.Handler {
	if user == "" || passwordHash == "" {
		log.Println("⚠️ ADMIN_USER/ADMIN_PASSWORD_HASH not set, admin pages are open")
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return basicauth.New(basicauth.Config{
		Realm: "Hostel Admin",
		Authorizer: func(u, p string) bool {
			if subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p)) == nil
		},
	})
}
