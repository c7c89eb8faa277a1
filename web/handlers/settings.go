package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SettingsView returns the persisted settings.
func (h *Handler) SettingsView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"companyName": h.engine.CompanyName(c.Context()),
	})
}

// SettingsUpdate persists the company name.
func (h *Handler) SettingsUpdate(c *fiber.Ctx) error {
	var payload struct {
		CompanyName string `json:"companyName"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid settings payload")
	}
	if err := h.engine.SetCompanyName(c.Context(), payload.CompanyName); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"companyName": payload.CompanyName})
}

// ExportData returns the full backup bundle.
func (h *Handler) ExportData(c *fiber.Ctx) error {
	return c.JSON(h.engine.Export(c.Context()))
}

// ImportData replaces all collections with the uploaded bundle. A bundle
// missing any of the five collections is rejected and nothing is applied.
func (h *Handler) ImportData(c *fiber.Ctx) error {
	if err := h.engine.Import(c.Context(), c.Body()); err != nil {
		return businessError(c, err)
	}
	return c.JSON(fiber.Map{"status": "imported"})
}

// ResetData wipes everything except a single user and reseeds the samples.
func (h *Handler) ResetData(c *fiber.Ctx) error {
	h.engine.Reset(c.Context())
	return c.JSON(fiber.Map{"status": "reset"})
}
