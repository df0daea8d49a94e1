package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyledger/internal/repository/jsonfile"
	"github.com/mamadbah2/dairyledger/internal/server/handlers"
	"github.com/mamadbah2/dairyledger/internal/service/ledger"
	"github.com/mamadbah2/dairyledger/internal/service/views"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	repo, err := jsonfile.NewFileRepository(dir, filepath.Join(dir, "backups"), zap.NewNop())
	require.NoError(t, err)
	store := ledger.NewStore(repo, zap.NewNop())
	require.NoError(t, store.Load(context.Background()))
	viewSvc := views.NewService(store, 10, zap.NewNop())

	return New(Handlers{
		Dashboard:    handlers.NewDashboardHandler(viewSvc),
		Customers:    handlers.NewCustomerHandler(store, viewSvc, zap.NewNop()),
		Transactions: handlers.NewTransactionHandler(store, viewSvc, zap.NewNop()),
		Payments:     handlers.NewPaymentHandler(store, viewSvc, zap.NewNop()),
		Reports:      handlers.NewReportHandler(store),
		Data:         handlers.NewDataHandler(store, zap.NewNop()),
	}, zap.NewNop())
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func createCustomer(t *testing.T, engine *gin.Engine, name, kind string) string {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/customers", gin.H{"name": name, "type": kind})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

func TestHealthz(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerLifecycle(t *testing.T) {
	engine := newTestEngine(t)

	id := createCustomer(t, engine, "Rajesh", "buyer")
	assert.Equal(t, "C01", id)

	rec := doJSON(t, engine, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Rajesh", list.Items[0].Name)

	rec = doJSON(t, engine, http.MethodPut, "/api/customers/"+id, gin.H{"name": "Rajesh Kumar", "type": "buyer"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/customers/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/customers/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationErrorsCarryField(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/customers", gin.H{"type": "buyer"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "name", body.Field)
}

func TestTransactionCreateDerivesType(t *testing.T) {
	engine := newTestEngine(t)
	id := createCustomer(t, engine, "Suresh", "seller")

	rec := doJSON(t, engine, http.MethodPost, "/api/transactions", gin.H{
		"customerId": id,
		"quantity":   "10",
		"rate":       "40",
		"milkType":   "Buffalo",
		"date":       "2024-01-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "T01", created.ID)
	assert.Equal(t, "buy", created.Type)
}

func TestExportImportRoundTrip(t *testing.T) {
	engine := newTestEngine(t)
	createCustomer(t, engine, "Rajesh", "buyer")

	rec := doJSON(t, engine, http.MethodGet, "/api/data/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "milk_trade_data_backup.json")
	exported := rec.Body.Bytes()

	rec = doJSON(t, engine, http.MethodDelete, "/api/data", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/data/import", bytes.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	imported := httptest.NewRecorder()
	engine.ServeHTTP(imported, req)
	require.Equal(t, http.StatusOK, imported.Code, imported.Body.String())

	rec = doJSON(t, engine, http.MethodGet, "/api/customers", nil)
	var list struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Items, 1)
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/data/import", bytes.NewReader([]byte(`{"customers":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	id := createCustomer(t, engine, "Rajesh", "buyer")

	rec := doJSON(t, engine, http.MethodPost, "/api/transactions", gin.H{
		"customerId": id,
		"quantity":   "10",
		"rate":       "50",
		"milkType":   "Cow",
		"date":       "2024-01-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		TotalOwedToYou string `json:"totalOwedToYou"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "500", view.TotalOwedToYou)
}
