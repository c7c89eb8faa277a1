package stock

import (
	"context"
	"log"

	"github.com/stockmaster/models"
)

// Export produces the full backup bundle, including the company name
// setting. Slices are always non-nil so the bundle re-imports cleanly.
func (e *Engine) Export(ctx context.Context) models.ExportBundle {
	snap := e.Snapshot()
	bundle := models.ExportBundle{
		Products:     snap.Products,
		Categories:   snap.Categories,
		Suppliers:    snap.Suppliers,
		Transactions: snap.Transactions,
		Users:        snap.Users,
		Settings:     models.ExportSettings{CompanyName: e.adapter.CompanyName(ctx)},
	}
	if bundle.Products == nil {
		bundle.Products = []models.Product{}
	}
	if bundle.Categories == nil {
		bundle.Categories = []models.Category{}
	}
	if bundle.Suppliers == nil {
		bundle.Suppliers = []models.Supplier{}
	}
	if bundle.Transactions == nil {
		bundle.Transactions = []models.Transaction{}
	}
	if bundle.Users == nil {
		bundle.Users = []models.User{}
	}
	return bundle
}

// Import replaces every collection with the bundle's contents. The payload
// is validated first: if any of the five collections is missing the import
// is rejected outright and nothing changes.
func (e *Engine) Import(ctx context.Context, data []byte) error {
	bundle, err := models.ParseExportBundle(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.data = Collections{
		Products:     bundle.Products,
		Categories:   bundle.Categories,
		Suppliers:    bundle.Suppliers,
		Transactions: bundle.Transactions,
		Users:        bundle.Users,
	}
	sortTransactions(e.data.Transactions)
	// The user collection may never be empty, even right after an import.
	if len(e.data.Users) == 0 {
		e.data.Users = defaultUsers()
	}
	if bundle.Settings.CompanyName != "" {
		if err := e.adapter.SetCompanyName(ctx, bundle.Settings.CompanyName); err != nil {
			log.Printf("storage: write company name failed: %v", err)
		}
	}
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// Reset wipes every collection, keeps a single user (the prior first user,
// or the default Admin) and reseeds the sample data.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	e.data = e.adapter.Reset(ctx)
	sortTransactions(e.data.Transactions)
	snap := copyCollections(e.data)
	e.mu.Unlock()

	e.notify(snap)
}

// CompanyName returns the persisted company name setting.
func (e *Engine) CompanyName(ctx context.Context) string {
	return e.adapter.CompanyName(ctx)
}

// SetCompanyName persists the company name setting.
func (e *Engine) SetCompanyName(ctx context.Context, name string) error {
	return e.adapter.SetCompanyName(ctx, name)
}
