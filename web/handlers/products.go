package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/models"
)

// ProductList returns all products.
func (h *Handler) ProductList(c *fiber.Ctx) error {
	return c.JSON(h.engine.Products())
}

// ProductView returns a single product.
func (h *Handler) ProductView(c *fiber.Ctx) error {
	product, ok := h.engine.FindProduct(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(product)
}

// ProductCreate creates a new product. A positive initial quantity shows up
// in the ledger as an entry movement.
func (h *Handler) ProductCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "invalid product payload")
	}
	created := h.engine.AddProduct(c.Context(), product)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ProductUpdate applies a partial update to a product.
func (h *Handler) ProductUpdate(c *fiber.Ctx) error {
	var upd models.ProductUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badRequest(c, "invalid product payload")
	}
	product, err := h.engine.UpdateProduct(c.Context(), c.Params("id"), upd)
	if err != nil {
		return businessError(c, err)
	}
	return c.JSON(product)
}

// ProductDelete deletes a product. Ledger entries referencing it remain.
func (h *Handler) ProductDelete(c *fiber.Ctx) error {
	if err := h.engine.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
