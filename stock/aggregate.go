package stock

import (
	"time"

	"github.com/stockmaster/models"
)

// UnknownProduct is the placeholder name for ledger entries whose product
// has been deleted. Lookups never fail on a dangling reference.
const UnknownProduct = "Unknown product"

// Read-only reporting views. All of them work on the current snapshot and
// are recomputed on every call; nothing here mutates state.

// LowStockProducts returns products at or below their alert threshold.
// Out-of-stock products (quantity 0) are always included, so "out of stock"
// is a subset of "low stock" in alert counts.
func (e *Engine) LowStockProducts() []models.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var low []models.Product
	for _, p := range e.data.Products {
		if p.Quantity <= p.Threshold {
			low = append(low, p)
		}
	}
	return low
}

// ProductsByCategory groups products under their category's name. Every
// category appears in the result, with an empty slice when no product
// references it, so dashboards get complete category coverage.
func (e *Engine) ProductsByCategory() map[string][]models.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	groups := make(map[string][]models.Product, len(e.data.Categories))
	for _, c := range e.data.Categories {
		members := []models.Product{}
		for _, p := range e.data.Products {
			if p.CategoryID == c.ID {
				members = append(members, p)
			}
		}
		groups[c.Name] = members
	}
	return groups
}

// RecentTransactions returns the newest ledger entries, at most limit.
// A non-positive limit defaults to 5.
func (e *Engine) RecentTransactions(limit int) []models.Transaction {
	if limit <= 0 {
		limit = 5
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if limit > len(e.data.Transactions) {
		limit = len(e.data.Transactions)
	}
	return append([]models.Transaction(nil), e.data.Transactions[:limit]...)
}

// TotalStockValue returns the sum of price*quantity over all products.
func (e *Engine) TotalStockValue() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var total float64
	for _, p := range e.data.Products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// TransactionsInPeriod returns ledger entries dated within the last days.
// A non-positive days defaults to 7.
func (e *Engine) TransactionsInPeriod(days int) []models.Transaction {
	if days <= 0 {
		days = 7
	}
	start := e.now().AddDate(0, 0, -days)
	e.mu.RLock()
	defer e.mu.RUnlock()
	var within []models.Transaction
	for _, t := range e.data.Transactions {
		if !t.Date.Before(start) {
			within = append(within, t)
		}
	}
	return within
}

// ProductName resolves a product id to its name, falling back to the
// UnknownProduct placeholder for dangling references.
func (e *Engine) ProductName(id string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i := indexProduct(e.data.Products, id); i >= 0 {
		return e.data.Products[i].Name
	}
	return UnknownProduct
}

// DailyStats summarizes the ledger activity of one calendar day.
type DailyStats struct {
	Date         time.Time `json:"date"`
	Transactions int       `json:"transactions"`
	Entries      int       `json:"entries"`
	Exits        int       `json:"exits"`
	// NetValue is the value of entries minus exits, priced from the
	// current product list. Movements on deleted products contribute 0.
	NetValue float64 `json:"netValue"`
}

// DailyStats computes the movement summary for the calendar day containing
// the given time.
func (e *Engine) DailyStats(day time.Time) DailyStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := DailyStats{Date: day}
	y, m, d := day.Date()
	for _, t := range e.data.Transactions {
		// Bucket by the queried day's location so movements stamped in
		// another zone land on a consistent day boundary.
		ty, tm, td := t.Date.In(day.Location()).Date()
		if ty != y || tm != m || td != d {
			continue
		}
		stats.Transactions++
		value := e.movementValueLocked(t)
		if t.Type == models.TransactionEntry {
			stats.Entries++
			stats.NetValue += value
		} else {
			stats.Exits++
			stats.NetValue -= value
		}
	}
	return stats
}

// MonthStats summarizes one month of a yearly report.
type MonthStats struct {
	Month        time.Month `json:"month"`
	Entries      int        `json:"entries"`
	Exits        int        `json:"exits"`
	EntriesValue float64    `json:"entriesValue"`
	ExitsValue   float64    `json:"exitsValue"`
}

// AnnualStats is the per-month breakdown of one year plus its totals.
type AnnualStats struct {
	Year         int          `json:"year"`
	Months       []MonthStats `json:"months"`
	Transactions int          `json:"transactions"`
	Entries      int          `json:"entries"`
	Exits        int          `json:"exits"`
	NetValue     float64      `json:"netValue"`
}

// AnnualReport computes the month-by-month breakdown for one year.
func (e *Engine) AnnualReport(year int) AnnualStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	report := AnnualStats{Year: year, Months: make([]MonthStats, 12)}
	for i := range report.Months {
		report.Months[i].Month = time.Month(i + 1)
	}

	for _, t := range e.data.Transactions {
		if t.Date.Year() != year {
			continue
		}
		month := &report.Months[int(t.Date.Month())-1]
		value := e.movementValueLocked(t)
		if t.Type == models.TransactionEntry {
			month.Entries++
			month.EntriesValue += value
		} else {
			month.Exits++
			month.ExitsValue += value
		}
	}

	for _, m := range report.Months {
		report.Entries += m.Entries
		report.Exits += m.Exits
		report.Transactions += m.Entries + m.Exits
		report.NetValue += m.EntriesValue - m.ExitsValue
	}
	return report
}

// movementValueLocked prices a ledger entry against the current product
// list. Entries on deleted products are worth 0.
func (e *Engine) movementValueLocked(t models.Transaction) float64 {
	if i := indexProduct(e.data.Products, t.ProductID); i >= 0 {
		return e.data.Products[i].Price * float64(t.Quantity)
	}
	return 0
}
