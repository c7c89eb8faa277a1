package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/models"
)

// CategoryList returns all categories.
func (h *Handler) CategoryList(c *fiber.Ctx) error {
	return c.JSON(h.engine.Categories())
}

// CategoryCreate creates a new category.
func (h *Handler) CategoryCreate(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "invalid category payload")
	}
	created := h.engine.AddCategory(c.Context(), category)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// CategoryUpdate applies a partial update to a category.
func (h *Handler) CategoryUpdate(c *fiber.Ctx) error {
	var upd models.CategoryUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badRequest(c, "invalid category payload")
	}
	category, err := h.engine.UpdateCategory(c.Context(), c.Params("id"), upd)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(category)
}

// CategoryDelete deletes a category. The delete is refused while any
// product still references it.
func (h *Handler) CategoryDelete(c *fiber.Ctx) error {
	if err := h.engine.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
