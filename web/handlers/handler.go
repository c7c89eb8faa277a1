// Package handlers implements the JSON API over the stock engine.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/models"
	"github.com/stockmaster/stock"
)

// Handler carries the dependencies shared by all route handlers. The engine
// is injected so handlers never reach for globals.
type Handler struct {
	engine    *stock.Engine
	jwtSecret string
}

// New creates the handler set.
func New(engine *stock.Engine, jwtSecret string) *Handler {
	return &Handler{engine: engine, jwtSecret: jwtSecret}
}

// businessError maps engine errors to JSON responses. Guard violations are
// conflicts, missing entities are 404s, bad payloads are 400s.
func businessError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var missing *models.MissingCollectionError
	switch {
	case errors.Is(err, stock.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, stock.ErrCategoryInUse),
		errors.Is(err, stock.ErrSupplierInUse),
		errors.Is(err, stock.ErrLastUser):
		status = fiber.StatusConflict
	case errors.Is(err, stock.ErrInvalidTransaction), errors.As(err, &missing):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// badRequest reports an undecodable payload.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
