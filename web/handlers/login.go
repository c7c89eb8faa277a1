package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/auth"
	"github.com/stockmaster/web/middleware"
)

// Login resolves a user by email and issues a session token. There is no
// password: accounts are a lightweight stand-in for a real identity
// provider.
func (h *Handler) Login(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid login payload")
	}

	user, ok := h.engine.FindUserByEmail(payload.Email)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unknown email"})
	}

	token, err := auth.IssueToken(h.jwtSecret, user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not issue token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the account behind the current session token.
func (h *Handler) Me(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no session"})
	}
	user, ok := h.engine.FindUser(session.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}
