package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ReportsOverview returns the dashboard headline numbers: stock valuation,
// low-stock alerts and the most recent movements.
func (h *Handler) ReportsOverview(c *fiber.Ctx) error {
	lowStock := h.engine.LowStockProducts()
	recent := h.engine.RecentTransactions(5)

	views := make([]transactionView, 0, len(recent))
	for _, t := range recent {
		views = append(views, transactionView{
			Transaction: t,
			ProductName: h.engine.ProductName(t.ProductID),
		})
	}

	return c.JSON(fiber.Map{
		"totalProducts":      len(h.engine.Products()),
		"totalStockValue":    h.engine.TotalStockValue(),
		"lowStockCount":      len(lowStock),
		"lowStockProducts":   lowStock,
		"recentTransactions": views,
	})
}

// LowStockReport returns every product at or below its threshold,
// out-of-stock products included.
func (h *Handler) LowStockReport(c *fiber.Ctx) error {
	return c.JSON(h.engine.LowStockProducts())
}

// ByCategoryReport groups products by category name. Categories without
// products appear with an empty list.
func (h *Handler) ByCategoryReport(c *fiber.Ctx) error {
	return c.JSON(h.engine.ProductsByCategory())
}

// DailyReport summarizes the movements of one day (?date=YYYY-MM-DD,
// default today).
func (h *Handler) DailyReport(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		// Parse in the server's zone so the day boundary matches the
		// zone movements are stamped with.
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}
	return c.JSON(h.engine.DailyStats(day))
}

// AnnualReport returns the month-by-month movement breakdown for one year
// (?year=YYYY, default current year).
func (h *Handler) AnnualReport(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		year = time.Now().Year()
	}
	return c.JSON(h.engine.AnnualReport(year))
}
