package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockmaster/models"
)

// transactionView is a ledger entry with its product name resolved for
// display. Deleted products show the placeholder name.
type transactionView struct {
	models.Transaction
	ProductName string `json:"productName"`
}

// TransactionList returns the full ledger, newest first. An optional
// ?days=N query narrows it to the last N days.
func (h *Handler) TransactionList(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if days := c.QueryInt("days"); days > 0 {
		transactions = h.engine.TransactionsInPeriod(days)
	} else {
		transactions = h.engine.Transactions()
	}

	views := make([]transactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, transactionView{
			Transaction: t,
			ProductName: h.engine.ProductName(t.ProductID),
		})
	}
	return c.JSON(views)
}

// TransactionCreate records a manual stock movement and adjusts the
// product's quantity. The ledger is append-only: there is no update or
// delete counterpart.
func (h *Handler) TransactionCreate(c *fiber.Ctx) error {
	var transaction models.Transaction
	if err := c.BodyParser(&transaction); err != nil {
		return badRequest(c, "invalid transaction payload")
	}
	created, err := h.engine.AddTransaction(c.Context(), transaction)
	if err != nil {
		return businessError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
