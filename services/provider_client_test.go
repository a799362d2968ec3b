package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/selection"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCredentials struct {
	key string
	err error
}

func (s stubCredentials) ProviderKey(ctx context.Context, customerID uuid.UUID) (string, error) {
	return s.key, s.err
}

func catalogFixture() []models.ServiceRecord {
	min := 10.0
	max := 1000.0
	return []models.ServiceRecord{
		{ProviderServiceID: "205", Category: "IG Likes", Name: "Post likes", MinQuantity: &min, MaxQuantity: &max},
	}
}

func readySession(t *testing.T) *selection.Session {
	t.Helper()
	sess := selection.ForCustomer(uuid.Must(uuid.NewV7()))
	sess.PickCategory("IG Likes")
	sess.PickService("205")
	sess.SetLink("  https://example.com/post/1  ")
	sess.SetQuantity(100)
	sess.SetAcknowledged(true)
	return sess
}

func TestPlaceOrderValidationFailureSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := selection.ForCustomer(uuid.Must(uuid.NewV7()))
	client := NewProviderClient(stubCredentials{key: "k"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.Equal(t, "Choose a category first.", result.Message)
	assert.Zero(t, calls.Load())
	assert.Equal(t, models.NoteError, sess.Notices().Current().Kind)
}

func TestPlaceOrderMissingBaseIsConfigFault(t *testing.T) {
	t.Setenv("PROVIDER_API_BASE", "")

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: "k"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.Equal(t, "Provider API base is not configured.", result.Message)
	// draft untouched so the customer can retry
	assert.Equal(t, int64(100), sess.Snapshot().Quantity)
}

func TestPlaceOrderMissingCredentialIsAuthFault(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: ""})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.Equal(t, "You must sign in first.", result.Message)
	assert.Zero(t, calls.Load(), "no network call without a credential")
}

func TestPlaceOrderSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: "secret-key"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	require.True(t, result.Placed)
	assert.Equal(t, "/v1/order/place", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, float64(205), gotBody["provider_service_id"])
	assert.Equal(t, "https://example.com/post/1", gotBody["link"], "link is trimmed before sending")
	assert.Equal(t, float64(100), gotBody["quantity"])

	// per-order fields reset, selection preserved
	draft := sess.Snapshot()
	assert.Equal(t, "IG Likes", draft.Category)
	require.NotNil(t, draft.ServiceID)
	assert.Equal(t, "205", *draft.ServiceID)
	assert.Empty(t, draft.Link)
	assert.Zero(t, draft.Quantity)
	assert.False(t, draft.Acknowledged)

	assert.Equal(t, models.NoteSuccess, sess.Notices().Current().Kind)
}

func TestPlaceOrderServerRejectionUsesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"message":"bad link"}`))
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: "k"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.Equal(t, "bad link", result.Message)
	// selection untouched on failure
	assert.Equal(t, int64(100), sess.Snapshot().Quantity)
}

func TestPlaceOrderUndecodableBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: "k"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.Equal(t, genericOrderFailure, result.Message)
}

func TestPlaceOrderOKFieldRequiredEvenOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: "k"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.Equal(t, genericOrderFailure, result.Message)
}

func TestPlaceOrderTransportFailureBecomesNotification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	sess := readySession(t)
	client := NewProviderClient(stubCredentials{key: "k"})

	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, catalogFixture())

	assert.False(t, result.Placed)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, models.NoteError, sess.Notices().Current().Kind)
	// selection untouched after a network fault
	assert.Equal(t, int64(100), sess.Snapshot().Quantity)
}

func TestPlaceOrderNonNumericServiceIDSentAsString(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()
	t.Setenv("PROVIDER_API_BASE", srv.URL)

	records := []models.ServiceRecord{{ProviderServiceID: "vx-promo", Category: "YT Views"}}
	sess := selection.ForCustomer(uuid.Must(uuid.NewV7()))
	sess.PickCategory("YT Views")
	sess.PickService("vx-promo")
	sess.SetLink("https://example.com/video")
	sess.SetQuantity(500)
	sess.SetAcknowledged(true)

	client := NewProviderClient(stubCredentials{key: "k"})
	result := client.PlaceOrder(context.Background(), uuid.Must(uuid.NewV7()), sess, records)

	require.True(t, result.Placed)
	assert.Equal(t, "vx-promo", gotBody["provider_service_id"])
}
