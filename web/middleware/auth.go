package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/auth"
	"github.com/stockmaster/stock"
)

// sessionKey is the Locals key the resolved session is stored under.
const sessionKey = "session"

// RequireAuth resolves the bearer token into a Session and attaches it to
// the request. Requests without a valid token are rejected before reaching
// any handler.
func RequireAuth(secret string, engine *stock.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token format, must be 'Bearer <token>'",
			})
		}

		userID, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		// The user must still exist; tokens outlive user deletion.
		user, ok := engine.FindUser(userID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "user associated with token not found",
			})
		}

		c.Locals(sessionKey, auth.Session{UserID: user.ID, Role: user.Role})
		return c.Next()
	}
}

// RequirePermission gates a route on the session's role. RequireAuth must
// run earlier in the chain.
func RequirePermission(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := c.Locals(sessionKey).(auth.Session)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "no session",
			})
		}
		if !session.Can(action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient permissions",
			})
		}
		return c.Next()
	}
}

// SessionFromCtx returns the session attached by RequireAuth.
func SessionFromCtx(c *fiber.Ctx) (auth.Session, bool) {
	session, ok := c.Locals(sessionKey).(auth.Session)
	return session, ok
}
