// Package stock implements the ledger and derived-state engine: it owns the
// product, category, supplier, transaction and user collections, enforces
// the referential and quantity invariants, derives ledger entries from CRUD
// operations and computes the reporting views.
package stock

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/stockmaster/models"
	"github.com/stockmaster/storage"
)

// Storage keys, one JSON array per collection plus one scalar setting.
const (
	keyProducts     = "products"
	keyCategories   = "categories"
	keySuppliers    = "suppliers"
	keyTransactions = "transactions"
	keyUsers        = "users"
	keyCompanyName  = "companyName"
)

// defaultCompanyName is used until settings are saved for the first time.
const defaultCompanyName = "My Company"

// Collections is the complete dataset owned by the engine.
type Collections struct {
	Products     []models.Product
	Categories   []models.Category
	Suppliers    []models.Supplier
	Transactions []models.Transaction
	Users        []models.User
}

// Adapter bridges the engine and the key-value store. It loads collections
// at startup (seeding defaults when a key is absent or unreadable) and
// writes every collection back after each mutation.
type Adapter struct {
	store storage.Store
}

// NewAdapter wraps the given store.
func NewAdapter(store storage.Store) *Adapter {
	return &Adapter{store: store}
}

// Load reads all five collections. Missing or unreadable keys fall back to
// the built-in sample dataset, and whatever was resolved is written back
// immediately so defaults become durable. A store that cannot be read still
// yields a usable dataset, never an empty one.
func (a *Adapter) Load(ctx context.Context) Collections {
	c := Collections{
		Products:     loadSlice(ctx, a.store, keyProducts, sampleProducts),
		Categories:   loadSlice(ctx, a.store, keyCategories, sampleCategories),
		Suppliers:    loadSlice(ctx, a.store, keySuppliers, sampleSuppliers),
		Transactions: loadSlice(ctx, a.store, keyTransactions, sampleTransactions),
		Users:        loadSlice(ctx, a.store, keyUsers, defaultUsers),
	}
	// A stored but empty user list would lock everyone out.
	if len(c.Users) == 0 {
		c.Users = defaultUsers()
	}
	if err := a.Save(ctx, c); err != nil {
		log.Printf("storage: write-back after load failed: %v", err)
	}
	return c
}

// Save overwrites every collection under its key. No merging is performed.
func (a *Adapter) Save(ctx context.Context, c Collections) error {
	return errors.Join(
		saveSlice(ctx, a.store, keyProducts, c.Products),
		saveSlice(ctx, a.store, keyCategories, c.Categories),
		saveSlice(ctx, a.store, keySuppliers, c.Suppliers),
		saveSlice(ctx, a.store, keyTransactions, c.Transactions),
		saveSlice(ctx, a.store, keyUsers, c.Users),
	)
}

// Reset clears all collections, keeping only the prior first user (or the
// default Admin when none existed), then reloads so sample data is seeded
// again.
func (a *Adapter) Reset(ctx context.Context) Collections {
	keep := defaultUsers()
	if users := loadSlice(ctx, a.store, keyUsers, defaultUsers); len(users) > 0 {
		keep = users[:1]
	}

	for _, key := range []string{keyProducts, keyCategories, keySuppliers, keyTransactions, keyUsers} {
		if err := a.store.Remove(ctx, key); err != nil {
			log.Printf("storage: remove %s failed: %v", key, err)
		}
	}
	if err := saveSlice(ctx, a.store, keyUsers, keep); err != nil {
		log.Printf("storage: write %s failed: %v", keyUsers, err)
	}

	return a.Load(ctx)
}

// CompanyName returns the persisted company name, or the default if unset.
func (a *Adapter) CompanyName(ctx context.Context) string {
	name, ok, err := a.store.Get(ctx, keyCompanyName)
	if err != nil {
		log.Printf("storage: read %s failed: %v", keyCompanyName, err)
		return defaultCompanyName
	}
	if !ok || name == "" {
		return defaultCompanyName
	}
	return name
}

// SetCompanyName persists the company name.
func (a *Adapter) SetCompanyName(ctx context.Context, name string) error {
	return a.store.Set(ctx, keyCompanyName, name)
}

// loadSlice reads one collection. An absent key, a read failure or a payload
// that does not decode to a JSON array all resolve to the fallback dataset.
// A stored empty array stays empty.
func loadSlice[T any](ctx context.Context, store storage.Store, key string, fallback func() []T) []T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("storage: read %s failed, seeding defaults: %v", key, err)
		return fallback()
	}
	if !ok || raw == "" {
		return fallback()
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("storage: decode %s failed, seeding defaults: %v", key, err)
		return fallback()
	}
	if items == nil {
		// Stored JSON null, same as absent.
		return fallback()
	}
	return items
}

// saveSlice writes one collection as a JSON array. Nil slices are encoded as
// [] so a later load keeps them empty instead of reseeding samples.
func saveSlice[T any](ctx context.Context, store storage.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(data))
}
