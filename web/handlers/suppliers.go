package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/models"
)

// SupplierList returns all suppliers.
func (h *Handler) SupplierList(c *fiber.Ctx) error {
	return c.JSON(h.engine.Suppliers())
}

// SupplierCreate creates a new supplier.
func (h *Handler) SupplierCreate(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return badRequest(c, "invalid supplier payload")
	}
	created := h.engine.AddSupplier(c.Context(), supplier)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// SupplierUpdate applies a partial update to a supplier.
func (h *Handler) SupplierUpdate(c *fiber.Ctx) error {
	var upd models.SupplierUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badRequest(c, "invalid supplier payload")
	}
	supplier, err := h.engine.UpdateSupplier(c.Context(), c.Params("id"), upd)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(supplier)
}

// SupplierDelete deletes a supplier. The delete is refused while any
// product still references it.
func (h *Handler) SupplierDelete(c *fiber.Ctx) error {
	if err := h.engine.DeleteSupplier(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
