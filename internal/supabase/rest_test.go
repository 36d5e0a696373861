package supabase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/config"
	"order-photos-backend/internal/models"
	"order-photos-backend/internal/supabase"
)

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	auth   string
	prefer string
}

func newRestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*supabase.RestClient, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			auth:   r.Header.Get("Authorization"),
			prefer: r.Header.Get("Prefer"),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := supabase.NewClient(&config.Config{
		SupabaseURL:            srv.URL,
		SupabaseServiceRoleKey: "service-role-key",
	})
	require.NoError(t, err)

	return supabase.NewRestClient(client), &requests
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func TestRestClient_ListPurgeCandidates(t *testing.T) {
	orderID := uuid.New()
	rest, requests := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"id":"`+orderID.String()+`","public_code":"ABCD","status":"done","archived_at":"2024-01-02T03:04:05Z","created_at":"2023-12-01T00:00:00Z","order_photos":[{"id":"`+uuid.NewString()+`"}]}]`)
	})

	cutoff := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	orders, err := rest.ListPurgeCandidates(context.Background(), cutoff, 200)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, orderID, orders[0].ID)
	assert.Equal(t, "ABCD", orders[0].PublicCode)
	require.NotNil(t, orders[0].ArchivedAt)
	assert.True(t, orders[0].ArchivedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/rest/v1/orders", req.path)
	assert.Equal(t, "Bearer service-role-key", req.auth)
	assert.Contains(t, req.query.Get("select"), "order_photos!inner(id)")
	assert.Equal(t, "lt.2025-01-15T12:00:00Z", req.query.Get("archived_at"))
	assert.Contains(t, req.query.Get("order"), "archived_at.asc")
	assert.Equal(t, "200", req.query.Get("limit"))
	assert.Equal(t, "1", req.query.Get("order_photos.limit"))
}

func TestRestClient_ListPhotosForOrders(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rest, requests := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"id":"`+uuid.NewString()+`","order_id":"`+a.String()+`","path":"orders/a/1.jpg","created_at":"2024-01-01T00:00:00Z"}]`)
	})

	keys, err := batch.NewKeys([]string{a.String(), b.String()}, 50)
	require.NoError(t, err)

	photos, err := rest.ListPhotosForOrders(context.Background(), keys, 500)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "orders/a/1.jpg", photos[0].Path)
	assert.Equal(t, a, photos[0].OrderID)

	req := (*requests)[0]
	assert.Equal(t, "/rest/v1/order_photos", req.path)
	assert.Contains(t, req.query.Get("order_id"), "in.(")
	assert.Contains(t, req.query.Get("order_id"), a.String())
	assert.Contains(t, req.query.Get("order_id"), b.String())
	assert.Equal(t, "500", req.query.Get("limit"))
}

func TestRestClient_ListPhotosForOrders_EmptyBatchSkipsRequest(t *testing.T) {
	rest, requests := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[]`)
	})

	photos, err := rest.ListPhotosForOrders(context.Background(), batch.Keys{}, 500)
	require.NoError(t, err)
	assert.Empty(t, photos)
	assert.Empty(t, *requests)
}

func TestRestClient_DeletePhotos(t *testing.T) {
	rest, requests := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Range", "*/2")
		w.WriteHeader(http.StatusNoContent)
	})

	keys, err := batch.NewKeys([]string{uuid.NewString(), uuid.NewString()}, 200)
	require.NoError(t, err)

	n, err := rest.DeletePhotos(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	req := (*requests)[0]
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/rest/v1/order_photos", req.path)
	assert.Contains(t, req.query.Get("id"), "in.(")
	assert.Contains(t, req.prefer, "count=exact")
}

func TestRestClient_GetOrder_NotFound(t *testing.T) {
	rest, _ := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[]`)
	})

	_, err := rest.GetOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRestClient_FindActiveOrderByCode(t *testing.T) {
	orderID := uuid.New()
	rest, requests := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"id":"`+orderID.String()+`","public_code":"QRST","status":"ready","archived_at":null,"created_at":"2025-01-01T00:00:00Z"}]`)
	})

	order, err := rest.FindActiveOrderByCode(context.Background(), "QRST", []string{"new", "ready"})
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Nil(t, order.ArchivedAt)

	req := (*requests)[0]
	assert.Equal(t, "eq.QRST", req.query.Get("public_code"))
	assert.Equal(t, "is.null", req.query.Get("archived_at"))
	assert.Contains(t, req.query.Get("status"), "ready")
	assert.Contains(t, req.query.Get("order"), "created_at.desc")
	assert.Equal(t, "1", req.query.Get("limit"))
}

func TestRestClient_CodeExists(t *testing.T) {
	rest, _ := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("public_code") == "eq.WXYZ" {
			writeJSON(w, `[{"id":"`+uuid.NewString()+`"}]`)
			return
		}
		writeJSON(w, `[]`)
	})

	exists, err := rest.CodeExists(context.Background(), "WXYZ")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = rest.CodeExists(context.Background(), "ABCD")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRestClient_CanceledContext(t *testing.T) {
	rest, requests := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rest.ListPurgeCandidates(ctx, time.Now(), 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *requests)
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := supabase.NewClient(&config.Config{SupabaseURL: "https://project.supabase.co"})
	assert.Error(t, err)
}
