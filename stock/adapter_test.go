package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/models"
	"github.com/stockmaster/storage"
)

// brokenStore fails every read so the fallback path can be exercised.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (brokenStore) Set(context.Context, string, string) error { return nil }
func (brokenStore) Remove(context.Context, string) error      { return nil }
func (brokenStore) Close() error                              { return nil }

func TestLoadSeedsSampleDataOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	adapter := NewAdapter(store)

	c := adapter.Load(ctx)
	assert.NotEmpty(t, c.Products)
	assert.NotEmpty(t, c.Categories)
	assert.NotEmpty(t, c.Suppliers)
	assert.NotEmpty(t, c.Transactions)
	require.Len(t, c.Users, 1)
	assert.Equal(t, models.RoleAdmin, c.Users[0].Role)

	// The seeded defaults were written back and are durable.
	assert.Equal(t, 5, store.Len())
	again := adapter.Load(ctx)
	require.Len(t, again.Products, len(c.Products))
	assert.Equal(t, c.Products[0].ID, again.Products[0].ID)
	assert.Equal(t, c.Products[0].Name, again.Products[0].Name)
}

func TestLoadKeepsStoredEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, keyProducts, "[]"))

	c := NewAdapter(store).Load(ctx)
	// An explicitly stored empty array is respected, not reseeded.
	assert.Empty(t, c.Products)
	// Absent collections still get samples.
	assert.NotEmpty(t, c.Categories)
}

func TestLoadReplacesEmptyUserList(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, keyUsers, "[]"))

	c := NewAdapter(store).Load(ctx)
	// An empty user list would lock everyone out: the default admin returns.
	require.Len(t, c.Users, 1)
	assert.Equal(t, "admin@stockmaster.com", c.Users[0].Email)
}

func TestLoadFallsBackOnCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, keyProducts, "{not json"))

	c := NewAdapter(store).Load(ctx)
	assert.NotEmpty(t, c.Products)
}

func TestLoadFallsBackOnStorageFailure(t *testing.T) {
	c := NewAdapter(brokenStore{}).Load(context.Background())
	// A dead store still yields a usable seeded dataset.
	assert.NotEmpty(t, c.Products)
	require.Len(t, c.Users, 1)
}

func TestResetKeepsFirstUser(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	engine.AddUser(ctx, models.User{Name: "Second", Email: "second@example.com", Role: models.RoleEditor})
	added := engine.AddProduct(ctx, models.Product{Name: "Laptop", Quantity: 3})
	require.Len(t, engine.Users(), 2)

	engine.Reset(ctx)

	// Only the prior first user survives; stock data is reseeded.
	users := engine.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "admin@stockmaster.com", users[0].Email)
	assert.NotEmpty(t, engine.Products())
	_, ok := engine.FindProduct(added.ID)
	assert.False(t, ok)
}

func TestResetWithoutUsersRecreatesDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	adapter := NewAdapter(store)

	c := adapter.Reset(ctx)
	require.Len(t, c.Users, 1)
	assert.Equal(t, models.RoleAdmin, c.Users[0].Role)
}

func TestCompanyNameDefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(storage.NewMemoryStore())

	assert.Equal(t, defaultCompanyName, adapter.CompanyName(ctx))
	require.NoError(t, adapter.SetCompanyName(ctx, "ACME Trading"))
	assert.Equal(t, "ACME Trading", adapter.CompanyName(ctx))
}
