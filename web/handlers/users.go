package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/models"
)

// UserList returns all users.
func (h *Handler) UserList(c *fiber.Ctx) error {
	return c.JSON(h.engine.Users())
}

// UserCreate creates a new user. The email format is checked here; role
// values are taken as-is, matching the engine's contract.
func (h *Handler) UserCreate(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return badRequest(c, "invalid user payload")
	}
	if !models.ValidEmail(user.Email) {
		return badRequest(c, "invalid email address")
	}
	created := h.engine.AddUser(c.Context(), user)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UserUpdate applies a partial update to a user.
func (h *Handler) UserUpdate(c *fiber.Ctx) error {
	var upd models.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badRequest(c, "invalid user payload")
	}
	if upd.Email != nil && !models.ValidEmail(*upd.Email) {
		return badRequest(c, "invalid email address")
	}
	user, err := h.engine.UpdateUser(c.Context(), c.Params("id"), upd)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(user)
}

// UserDelete deletes a user. Deleting the last remaining user is refused.
func (h *Handler) UserDelete(c *fiber.Ctx) error {
	if err := h.engine.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
