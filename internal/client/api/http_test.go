package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstall/internal/client/models"
)

// staticTokens is a TokenSource with a fixed value.
type staticTokens struct{ token string }

func (s staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, staticTokens{token: token})
}

func TestLogin_DecodesTokenAndUser(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "buyer@test.com", body["email"])
		assert.Equal(t, "password123", body["password"])

		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "t1",
			User:  models.User{ID: 7, Email: "buyer@test.com", Role: "buyer"},
		})
	})

	resp, err := c.Login(context.Background(), "buyer@test.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "buyer", resp.User.Role)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	c := newTestClient(t, "secret-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Book{})
	})

	_, err := c.ListBooks(context.Background())
	require.NoError(t, err)
}

func TestMapError_Unauthorized(t *testing.T) {
	c := newTestClient(t, "stale", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	})

	_, err := c.GetCart(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestMapError_NotFound(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetBook(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMapError_OtherStatusKeepsBackendMessage(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "not enough stock"})
	})

	_, err := c.AddToCart(context.Background(), 1, 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "not enough stock", apiErr.Error())
}

func TestDo_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // port is now dead

	c := NewHTTPClient(srv.URL, time.Second, staticTokens{})
	_, err := c.ListBooks(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestUpdateOrderStatus_SendsStatusBody(t *testing.T) {
	c := newTestClient(t, "t", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/orders/5/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Shipped", body["status"])

		_ = json.NewEncoder(w).Encode(models.Order{ID: 5, Status: models.OrderShipped})
	})

	order, err := c.UpdateOrderStatus(context.Background(), 5, models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, order.Status)
}

func TestRegister_UnwrapsUserEnvelope(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]models.User{
			"user": {ID: 3, Name: "Ann", Email: "ann@test.com", Role: "seller"},
		})
	})

	user, err := c.Register(context.Background(), models.RegisterRequest{
		Name: "Ann", Email: "ann@test.com", Password: "pw", Role: "seller",
	})
	require.NoError(t, err)
	assert.Equal(t, "seller", user.Role)
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrUnauthorized, ErrUnavailable))
	assert.False(t, errors.Is(ErrNotFound, ErrUnauthorized))
}
