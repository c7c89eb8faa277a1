package models

import "time"

// TransactionType distinguishes stock-increasing from stock-decreasing movements.
type TransactionType string

const (
	// TransactionEntry is a stock-increasing movement.
	TransactionEntry TransactionType = "entry"
	// TransactionExit is a stock-decreasing movement.
	TransactionExit TransactionType = "exit"
)

// Transaction represents one immutable ledger entry. The ledger is
// append-only: entries are never updated or deleted, even when the
// referenced product is gone.
type Transaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
}
