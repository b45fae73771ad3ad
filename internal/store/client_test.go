package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflow/contaflow/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, NewCache()), srv
}

func accountBody(id, code, name string) string {
	return `{"data": {"type": "accounts", "id": "` + id + `", "attributes": {"code": "` + code + `", "name": "` + name + `", "accountType": "asset", "level": 1, "isPostable": true, "status": "active"}}}`
}

func TestListAccounts_CachesBySignature(t *testing.T) {
	var calls int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, "/api/v1/accounts", r.URL.Path)
		w.Write([]byte(`{"data": [` + `{"type":"accounts","id":"1","attributes":{"code":"1000","name":"Activo"}}` + `]}`))
	}))

	ctx := context.Background()
	params := ListParams{Filters: map[string]string{"status": "active"}, PageSize: 20}

	first, err := client.ListAccounts(ctx, params)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := client.ListAccounts(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls), "second read is served from cache")

	// A different signature is a different cache entry.
	_, err = client.ListAccounts(ctx, ListParams{PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestCreateAccount_InvalidatesCollectionCache(t *testing.T) {
	var gets int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt64(&gets, 1)
			w.Write([]byte(`{"data": []}`))
		case http.MethodPost:
			var doc map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(accountBody("9", "1100", "Bancos")))
		}
	}))

	ctx := context.Background()

	_, err := client.ListAccounts(ctx, ListParams{})
	require.NoError(t, err)
	_, err = client.ListAccounts(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&gets))

	created, err := client.CreateAccount(ctx, model.Account{Code: "1100", Name: "Bancos", Type: model.AccountTypeAsset, Level: 1})
	require.NoError(t, err)
	assert.Equal(t, "9", created.ID)

	_, err = client.ListAccounts(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&gets), "mutation invalidated the collection key")
}

func TestGetAccount_BlankIDDisablesFetch(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a blank id")
	}))

	acc, err := client.GetAccount(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, acc)
}

func TestErrorMapping(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/accounts/404":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors": [{"status": "404", "title": "Not Found"}]}`))
		case "/api/v1/accounts/409":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"errors": [{"status": "409", "detail": "account has postings"}]}`))
		default:
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"errors": [{"status": "422", "detail": "code has already been taken", "source": {"pointer": "/data/attributes/code"}}]}`))
		}
	}))

	ctx := context.Background()

	_, err := client.GetAccount(ctx, "404")
	assert.ErrorIs(t, err, ErrNotFound)

	err = client.DeleteAccount(ctx, "409")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "account has postings")

	_, err = client.CreateAccount(ctx, model.Account{Code: "dup"})
	require.True(t, IsValidationError(err))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "code has already been taken", apiErr.Detail)
	assert.Equal(t, "/data/attributes/code", apiErr.Pointer)
}

func TestCreateEntry_SendsIdempotencyKeyAndPayloadShape(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))
		assert.Equal(t, "application/vnd.api+json", r.Header.Get("Content-Type"))

		var doc struct {
			Data struct {
				Type       string         `json:"type"`
				Attributes map[string]any `json:"attributes"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "journal-entries", doc.Data.Type)
		assert.Equal(t, "2025-01-15", doc.Data.Attributes["date"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"type": "journal-entries", "id": "20", "attributes": {"date": "2025-01-15", "description": "Test Journal Entry", "status": "draft"}}}`))
	}))

	entry, err := client.CreateEntry(context.Background(), model.JournalEntry{
		Date:        "2025-01-15",
		Description: "Test Journal Entry",
	})
	require.NoError(t, err)
	assert.Equal(t, "20", entry.ID)
	assert.Equal(t, model.EntryStatusDraft, entry.Status)
}

func TestCreateLine_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/journal-lines", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"type": "journal-lines", "id": "100", "attributes": {"journal_entry_id": 20, "account_id": 1, "debit": 1000, "credit": 0}}}`))
	}))

	line, err := client.CreateLine(context.Background(), model.JournalLine{
		JournalEntryID: "20",
		AccountID:      "1",
		Debit:          decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "100", line.ID)
	assert.Equal(t, "20", line.JournalEntryID)
	assert.Equal(t, "1000", line.Debit.String())
}

func TestGetReport(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounting/reports/balanza-comprobacion", r.URL.Path)
		w.Write([]byte(`{"data": {"title": "Balanza de Comprobación", "columns": ["Cuenta", "Debe", "Haber"], "rows": [["1100 Bancos", "1000.00", "0.00"]], "period": "2025-01"}}`))
	}))

	report, err := client.GetReport(context.Background(), model.ReportBalanzaComprobacion, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cuenta", "Debe", "Haber"}, report.Columns)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2025-01", report.Period)

	_, err = client.GetReport(context.Background(), model.ReportName("libro-magico"), ListParams{})
	assert.Error(t, err)
}

func TestCache_InvalidatePrefix(t *testing.T) {
	cache := NewCache()
	cache.Set("accounts?page=1", []byte("a"))
	cache.Set("accounts/7", []byte("b"))
	cache.Set("leads?page=1", []byte("c"))

	cache.InvalidatePrefix("accounts")

	_, ok := cache.Get("accounts?page=1")
	assert.False(t, ok)
	_, ok = cache.Get("accounts/7")
	assert.False(t, ok)
	_, ok = cache.Get("leads?page=1")
	assert.True(t, ok)
	assert.Equal(t, 1, cache.Len())
}
