package stock

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/models"
)

// Engine is the single writer of the entity collections. Every mutation
// runs under the lock, is written back through the adapter in program
// order, and then notifies subscribers with a snapshot. Business-rule
// violations leave the state untouched and are reported as sentinel errors.
type Engine struct {
	mu      sync.RWMutex
	adapter *Adapter
	data    Collections
	subs    []func(Collections)

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// NewEngine creates an engine over the given persistence adapter. Load must
// be called before any other method.
func NewEngine(adapter *Adapter) *Engine {
	return &Engine{
		adapter: adapter,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load populates the in-memory collections from storage, seeding sample
// data where nothing was persisted yet.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data = e.adapter.Load(ctx)
	sortTransactions(e.data.Transactions)
}

// Subscribe registers fn to be called with a snapshot of all collections
// after every completed mutation.
func (e *Engine) Subscribe(fn func(Collections)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Snapshot returns a copy of all collections.
func (e *Engine) Snapshot() Collections {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyCollections(e.data)
}

// --- products ---

// AddProduct inserts a new product, assigning its id and creation time.
// A positive initial quantity is recorded in the ledger as an entry.
func (e *Engine) AddProduct(ctx context.Context, p models.Product) models.Product {
	e.mu.Lock()
	p.ID = e.newID()
	p.CreatedAt = e.now()
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	e.data.Products = append(e.data.Products, p)
	if p.Quantity > 0 {
		e.insertTransactionLocked(models.Transaction{
			Type:      models.TransactionEntry,
			ProductID: p.ID,
			Quantity:  p.Quantity,
			Date:      e.now(),
			Notes:     "initial stock",
		})
	}
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return p
}

// UpdateProduct merges the update into the product. A quantity change is
// mirrored into the ledger as a single corrective movement so the
// transaction history stays authoritative for every stock change.
func (e *Engine) UpdateProduct(ctx context.Context, id string, upd models.ProductUpdate) (models.Product, error) {
	e.mu.Lock()
	i := indexProduct(e.data.Products, id)
	if i < 0 {
		e.mu.Unlock()
		return models.Product{}, ErrNotFound
	}

	oldQuantity := e.data.Products[i].Quantity
	upd.Apply(&e.data.Products[i])
	if e.data.Products[i].Quantity < 0 {
		e.data.Products[i].Quantity = 0
	}

	if diff := e.data.Products[i].Quantity - oldQuantity; diff != 0 {
		kind := models.TransactionEntry
		if diff < 0 {
			kind = models.TransactionExit
			diff = -diff
		}
		e.insertTransactionLocked(models.Transaction{
			Type:      kind,
			ProductID: id,
			Quantity:  diff,
			Date:      e.now(),
			Notes:     "manual stock adjustment",
		})
	}

	p := e.data.Products[i]
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return p, nil
}

// DeleteProduct removes the product. Ledger entries referencing it are kept;
// lookups of the dangling id resolve to the UnknownProduct placeholder.
func (e *Engine) DeleteProduct(ctx context.Context, id string) error {
	e.mu.Lock()
	i := indexProduct(e.data.Products, id)
	if i < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}
	e.data.Products = append(e.data.Products[:i], e.data.Products[i+1:]...)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// --- categories ---

// AddCategory inserts a new category, assigning its id.
func (e *Engine) AddCategory(ctx context.Context, c models.Category) models.Category {
	e.mu.Lock()
	c.ID = e.newID()
	e.data.Categories = append(e.data.Categories, c)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return c
}

// UpdateCategory merges the update into the category.
func (e *Engine) UpdateCategory(ctx context.Context, id string, upd models.CategoryUpdate) (models.Category, error) {
	e.mu.Lock()
	i := indexCategory(e.data.Categories, id)
	if i < 0 {
		e.mu.Unlock()
		return models.Category{}, ErrNotFound
	}
	upd.Apply(&e.data.Categories[i])
	c := e.data.Categories[i]
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return c, nil
}

// DeleteCategory removes the category unless a product still references it.
func (e *Engine) DeleteCategory(ctx context.Context, id string) error {
	e.mu.Lock()
	i := indexCategory(e.data.Categories, id)
	if i < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}
	for _, p := range e.data.Products {
		if p.CategoryID == id {
			e.mu.Unlock()
			return ErrCategoryInUse
		}
	}
	e.data.Categories = append(e.data.Categories[:i], e.data.Categories[i+1:]...)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// --- suppliers ---

// AddSupplier inserts a new supplier, assigning its id.
func (e *Engine) AddSupplier(ctx context.Context, s models.Supplier) models.Supplier {
	e.mu.Lock()
	s.ID = e.newID()
	e.data.Suppliers = append(e.data.Suppliers, s)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return s
}

// UpdateSupplier merges the update into the supplier.
func (e *Engine) UpdateSupplier(ctx context.Context, id string, upd models.SupplierUpdate) (models.Supplier, error) {
	e.mu.Lock()
	i := indexSupplier(e.data.Suppliers, id)
	if i < 0 {
		e.mu.Unlock()
		return models.Supplier{}, ErrNotFound
	}
	upd.Apply(&e.data.Suppliers[i])
	s := e.data.Suppliers[i]
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return s, nil
}

// DeleteSupplier removes the supplier unless a product still references it.
func (e *Engine) DeleteSupplier(ctx context.Context, id string) error {
	e.mu.Lock()
	i := indexSupplier(e.data.Suppliers, id)
	if i < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}
	for _, p := range e.data.Products {
		if p.SupplierID == id {
			e.mu.Unlock()
			return ErrSupplierInUse
		}
	}
	e.data.Suppliers = append(e.data.Suppliers[:i], e.data.Suppliers[i+1:]...)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// --- transactions ---

// AddTransaction appends a manual stock movement and adjusts the referenced
// product's quantity, clamped at zero. A movement against a product that no
// longer exists is still recorded; only the adjustment is skipped.
func (e *Engine) AddTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if t.Quantity <= 0 || (t.Type != models.TransactionEntry && t.Type != models.TransactionExit) {
		return models.Transaction{}, ErrInvalidTransaction
	}

	e.mu.Lock()
	t = e.insertTransactionLocked(t)

	if i := indexProduct(e.data.Products, t.ProductID); i >= 0 {
		q := e.data.Products[i].Quantity
		if t.Type == models.TransactionEntry {
			q += t.Quantity
		} else {
			q -= t.Quantity
		}
		// The ledger keeps the requested quantity; stock never goes negative.
		if q < 0 {
			q = 0
		}
		e.data.Products[i].Quantity = q
	}
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return t, nil
}

// --- users ---

// AddUser inserts a new user, assigning its id. Role values are not
// validated here; gating is the presentation layer's concern.
func (e *Engine) AddUser(ctx context.Context, u models.User) models.User {
	e.mu.Lock()
	u.ID = e.newID()
	e.data.Users = append(e.data.Users, u)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return u
}

// UpdateUser merges the update into the user.
func (e *Engine) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (models.User, error) {
	e.mu.Lock()
	i := indexUser(e.data.Users, id)
	if i < 0 {
		e.mu.Unlock()
		return models.User{}, ErrNotFound
	}
	upd.Apply(&e.data.Users[i])
	u := e.data.Users[i]
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return u, nil
}

// DeleteUser removes the user. The collection may never become empty, so
// deleting the last remaining user is refused.
func (e *Engine) DeleteUser(ctx context.Context, id string) error {
	e.mu.Lock()
	if len(e.data.Users) <= 1 {
		e.mu.Unlock()
		return ErrLastUser
	}
	i := indexUser(e.data.Users, id)
	if i < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}
	e.data.Users = append(e.data.Users[:i], e.data.Users[i+1:]...)
	snap := e.commitLocked(ctx)
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// --- read access ---

// Products returns a copy of the product collection.
func (e *Engine) Products() []models.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.Product(nil), e.data.Products...)
}

// Categories returns a copy of the category collection.
func (e *Engine) Categories() []models.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.Category(nil), e.data.Categories...)
}

// Suppliers returns a copy of the supplier collection.
func (e *Engine) Suppliers() []models.Supplier {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.Supplier(nil), e.data.Suppliers...)
}

// Transactions returns a copy of the ledger, sorted descending by date.
func (e *Engine) Transactions() []models.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.Transaction(nil), e.data.Transactions...)
}

// Users returns a copy of the user collection.
func (e *Engine) Users() []models.User {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.User(nil), e.data.Users...)
}

// FindProduct returns the product with the given id.
func (e *Engine) FindProduct(id string) (models.Product, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i := indexProduct(e.data.Products, id); i >= 0 {
		return e.data.Products[i], true
	}
	return models.Product{}, false
}

// FindUser returns the user with the given id.
func (e *Engine) FindUser(id string) (models.User, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if i := indexUser(e.data.Users, id); i >= 0 {
		return e.data.Users[i], true
	}
	return models.User{}, false
}

// FindUserByEmail returns the user with the given email address.
func (e *Engine) FindUserByEmail(email string) (models.User, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, u := range e.data.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// --- internals ---

// insertTransactionLocked assigns the id, appends the entry and re-sorts the
// ledger descending by date. The sort is stable so same-date entries keep
// insertion order. Callers hold the write lock and adjust product
// quantities themselves where applicable.
func (e *Engine) insertTransactionLocked(t models.Transaction) models.Transaction {
	t.ID = e.newID()
	if t.Date.IsZero() {
		t.Date = e.now()
	}
	e.data.Transactions = append(e.data.Transactions, t)
	sortTransactions(e.data.Transactions)
	return t
}

// commitLocked writes the collections back and returns a snapshot for
// notification. A failed write-back is logged but does not roll back the
// in-memory state.
func (e *Engine) commitLocked(ctx context.Context) Collections {
	if err := e.adapter.Save(ctx, e.data); err != nil {
		log.Printf("storage: write-back failed: %v", err)
	}
	return copyCollections(e.data)
}

// notify delivers the snapshot to every subscriber, outside the lock.
func (e *Engine) notify(snap Collections) {
	e.mu.RLock()
	subs := make([]func(Collections), len(e.subs))
	copy(subs, e.subs)
	e.mu.RUnlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func sortTransactions(ts []models.Transaction) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Date.After(ts[j].Date)
	})
}

func copyCollections(c Collections) Collections {
	return Collections{
		Products:     append([]models.Product(nil), c.Products...),
		Categories:   append([]models.Category(nil), c.Categories...),
		Suppliers:    append([]models.Supplier(nil), c.Suppliers...),
		Transactions: append([]models.Transaction(nil), c.Transactions...),
		Users:        append([]models.User(nil), c.Users...),
	}
}

func indexProduct(items []models.Product, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func indexCategory(items []models.Category, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func indexSupplier(items []models.Supplier, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func indexUser(items []models.User, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
