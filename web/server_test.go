package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/models"
	"github.com/stockmaster/stock"
	"github.com/stockmaster/storage"
	"github.com/stockmaster/web"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*fiber.App, *stock.Engine) {
	t.Helper()
	engine := stock.NewEngine(stock.NewAdapter(storage.NewMemoryStore()))
	engine.Load(context.Background())
	return web.NewServer(engine, testSecret).App(), engine
}

// login returns a bearer token for the given email.
func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/login", `{"email":"`+email+`"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Token string `json:"token"`
	}
	decode(t, resp, &payload)
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func request(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := newTestServer(t)
	resp := request(t, app, http.MethodPost, "/login", `{"email":"nobody@example.com"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	app, _ := newTestServer(t)
	resp := request(t, app, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app, _ := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodGet, "/api/me", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.User
	decode(t, resp, &me)
	assert.Equal(t, "admin@stockmaster.com", me.Email)
	assert.Equal(t, models.RoleAdmin, me.Role)
}

func TestAdminProductCRUD(t *testing.T) {
	app, engine := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodPost, "/api/products",
		`{"name":"Monitor","sku":"MON-1","price":250,"quantity":4,"threshold":2}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 4, created.Quantity)

	resp = request(t, app, http.MethodGet, "/api/products/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodPut, "/api/products/"+created.ID, `{"quantity":9}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decode(t, resp, &updated)
	assert.Equal(t, 9, updated.Quantity)

	resp = request(t, app, http.MethodDelete, "/api/products/"+created.ID, "", token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The ledger kept the movements of the deleted product.
	found := false
	for _, txn := range engine.Transactions() {
		if txn.ProductID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestViewerDeniedAddTransactions(t *testing.T) {
	app, engine := newTestServer(t)
	viewer := engine.AddUser(context.Background(), models.User{
		Name: "Vera", Email: "vera@example.com", Role: models.RoleViewer,
	})
	token := login(t, app, viewer.Email)

	// Viewing is allowed.
	resp := request(t, app, http.MethodGet, "/api/transactions", "", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Recording movements is not.
	resp = request(t, app, http.MethodPost, "/api/transactions",
		`{"type":"entry","productId":"1","quantity":5}`, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestViewerMayListSuppliersButNotManageThem(t *testing.T) {
	app, engine := newTestServer(t)
	viewer := engine.AddUser(context.Background(), models.User{
		Name: "Vic", Email: "vic@example.com", Role: models.RoleViewer,
	})
	token := login(t, app, viewer.Email)

	resp := request(t, app, http.MethodGet, "/api/suppliers", "", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/suppliers", `{"name":"NewCo"}`, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEditorMayAddTransactionsButNotManageUsers(t *testing.T) {
	app, engine := newTestServer(t)
	editor := engine.AddUser(context.Background(), models.User{
		Name: "Ed", Email: "ed@example.com", Role: models.RoleEditor,
	})
	token := login(t, app, editor.Email)

	resp := request(t, app, http.MethodPost, "/api/transactions",
		`{"type":"entry","productId":"1","quantity":5}`, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/users", "", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteCategoryInUseReturnsConflict(t *testing.T) {
	app, _ := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	// Seeded category "1" is referenced by the seeded products.
	resp := request(t, app, http.MethodDelete, "/api/categories/1", "", token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, "/api/categories/2", "", token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestInvalidTransactionPayloadRejected(t *testing.T) {
	app, _ := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodPost, "/api/transactions",
		`{"type":"entry","productId":"1","quantity":0}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserCreateValidatesEmail(t *testing.T) {
	app, _ := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodPost, "/api/users",
		`{"name":"Bad","email":"not-an-email","role":"Viewer"}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportsOverview(t *testing.T) {
	app, _ := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodGet, "/api/reports/overview", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var overview struct {
		TotalProducts   int     `json:"totalProducts"`
		TotalStockValue float64 `json:"totalStockValue"`
	}
	decode(t, resp, &overview)
	assert.Equal(t, 2, overview.TotalProducts)
	// Seeded: 590000*15 + 325000*25.
	assert.InDelta(t, 16975000, overview.TotalStockValue, 1e-6)
}

func TestSettingsRoundTripAndReset(t *testing.T) {
	app, engine := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodPut, "/api/settings", `{"companyName":"ACME Trading"}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/settings", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settings struct {
		CompanyName string `json:"companyName"`
	}
	decode(t, resp, &settings)
	assert.Equal(t, "ACME Trading", settings.CompanyName)

	engine.AddUser(context.Background(), models.User{
		Name: "Second", Email: "second@example.com", Role: models.RoleViewer,
	})
	resp = request(t, app, http.MethodPost, "/api/settings/reset", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, engine.Users(), 1)
}

func TestExportEndpoint(t *testing.T) {
	app, _ := newTestServer(t)
	token := login(t, app, "admin@stockmaster.com")

	resp := request(t, app, http.MethodGet, "/api/settings/export", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bundle models.ExportBundle
	decode(t, resp, &bundle)
	assert.Len(t, bundle.Products, 2)
	assert.Len(t, bundle.Users, 1)
}
