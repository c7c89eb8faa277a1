package stock

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/models"
	"github.com/stockmaster/storage"
)

func TestExportImportRoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	cat := engine.AddCategory(ctx, models.Category{Name: "Electronics"})
	sup := engine.AddSupplier(ctx, models.Supplier{Name: "TechPro"})
	p := engine.AddProduct(ctx, models.Product{
		Name: "Laptop", SKU: "LAP-1", CategoryID: cat.ID, SupplierID: sup.ID,
		Price: 1000, Quantity: 3, Threshold: 1,
	})
	_, err := engine.AddTransaction(ctx, models.Transaction{
		Type: models.TransactionExit, ProductID: p.ID, Quantity: 1,
	})
	require.NoError(t, err)
	require.NoError(t, engine.SetCompanyName(ctx, "ACME Trading"))

	bundle := engine.Export(ctx)
	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	// Import into a second, empty engine.
	other := NewEngine(NewAdapter(storage.NewMemoryStore()))
	other.Load(ctx)
	require.NoError(t, other.Import(ctx, data))

	restored := other.Export(ctx)
	restoredData, err := json.Marshal(restored)
	require.NoError(t, err)
	// Byte-for-byte identical bundles, maintained transaction order included.
	assert.JSONEq(t, string(data), string(restoredData))

	require.Len(t, restored.Transactions, len(bundle.Transactions))
	for i := range bundle.Transactions {
		assert.Equal(t, bundle.Transactions[i].ID, restored.Transactions[i].ID)
		assert.True(t, bundle.Transactions[i].Date.Equal(restored.Transactions[i].Date))
	}
}

func TestImportRejectsMissingCollection(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	before := engine.AddProduct(ctx, models.Product{Name: "Keep me"})

	// No users key: the whole payload is rejected.
	payload := []byte(`{
		"products": [], "categories": [], "suppliers": [], "transactions": []
	}`)
	err := engine.Import(ctx, payload)
	var missing *models.MissingCollectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "users", missing.Collection)

	// Nothing was applied.
	require.Len(t, engine.Products(), 1)
	assert.Equal(t, before.ID, engine.Products()[0].ID)
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.Import(context.Background(), []byte("{oops"))
	assert.Error(t, err)
}

func TestImportEmptyUsersRestoresDefaultAdmin(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	payload := []byte(`{
		"products": [], "categories": [], "suppliers": [],
		"transactions": [], "users": []
	}`)
	require.NoError(t, engine.Import(ctx, payload))

	users := engine.Users()
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestImportAppliesCompanyName(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	payload := []byte(`{
		"products": [], "categories": [], "suppliers": [],
		"transactions": [], "users": [],
		"settings": {"companyName": "Imported Inc"}
	}`)
	require.NoError(t, engine.Import(ctx, payload))
	assert.Equal(t, "Imported Inc", engine.CompanyName(ctx))
}
