package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casacare/casacare-admin-api/client"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/session"
)

// TestServerStartup verifies the full route table can be assembled
func TestServerStartup(t *testing.T) {
	router, _ := setupApp(t)
	assert.NotNil(t, router, "Router should be initialized")
}

// TestDashboardSessionAcceptance drives the dashboard toolkit end to end
// against a real server: signup, activation, login with persisted session,
// rehydration in a second process, and an order booked through the client
func TestDashboardSessionAcceptance(t *testing.T) {
	router, db := setupApp(t)
	server := httptest.NewServer(router)
	defer server.Close()

	ctx := context.Background()
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	storage, err := session.NewFileStorage(sessionFile)
	require.NoError(t, err)

	store := session.NewStore(server.URL, storage)
	assert.False(t, store.IsAuthenticated())

	_, err = store.Signup(ctx, client.SignupParams{
		Name:     "Asha Patil",
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// The fresh account is inactive, so login is refused and the session
	// stays logged out
	err = store.Login(ctx, "asha@example.com", "supersecret")
	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())

	require.NoError(t, db.Model(&models.AdminUser{}).
		Where("email = ?", "asha@example.com").
		Update("status", models.StatusActive).Error)

	require.NoError(t, store.Login(ctx, "asha@example.com", "supersecret"))
	assert.True(t, store.IsAuthenticated())
	require.NotNil(t, store.Admin())
	assert.Equal(t, "asha@example.com", store.Admin().Email)

	// A second store over the same file picks the session back up, as a
	// restarted dashboard process would
	reopened, err := session.NewFileStorage(sessionFile)
	require.NoError(t, err)
	restored := session.NewStore(server.URL, reopened)
	assert.True(t, restored.IsAuthenticated())
	require.NoError(t, restored.Verify(ctx))
	assert.Equal(t, "asha@example.com", restored.Admin().Email)

	// Work through the restored session's client from here on
	api := restored.Client()

	offering, err := api.CreateOffering(ctx, client.OfferingParams{
		Code:       "CLN-DEEP",
		Name:       "Deep Cleaning",
		Category:   "Cleaning Services",
		PriceTable: `[{"tier":"2 BHK","price":1200}]`,
	})
	require.NoError(t, err)
	assert.True(t, offering.HasPriceTable())

	order, err := api.CreateOrder(ctx, client.NewOrderParams{
		CustomerName: "Ravi Kumar",
		City:         "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.Total.IsZero())

	item, err := api.AddOrderItem(ctx, order.ID, client.NewItemParams{
		Code: "CLN-DEEP",
		Tier: "2 BHK",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLN-DEEP-2BHK", item.ProductCode)

	priced, err := api.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, priced.Subtotal.Equal(decimal.NewFromInt(1200)),
		"Subtotal should be 1200, got %s", priced.Subtotal)
	assert.True(t, priced.ConvenienceFee.Equal(decimal.NewFromInt(59)),
		"Convenience fee should be 59, got %s", priced.ConvenienceFee)
	assert.True(t, priced.Total.Equal(decimal.NewFromInt(1259)),
		"Total should be 1259, got %s", priced.Total)
	require.Len(t, priced.Items, 1)
	assert.Equal(t, "Cleaning Services", priced.Items[0].Category)

	// Logout tears down the persisted session too
	require.NoError(t, restored.Logout())
	assert.False(t, restored.IsAuthenticated())

	final, err := session.NewFileStorage(sessionFile)
	require.NoError(t, err)
	assert.False(t, session.NewStore(server.URL, final).IsAuthenticated())
}

// TestAnonymousClientAcceptance verifies an unauthenticated client is shut
// out of the admin surface with the backend's message intact
func TestAnonymousClientAcceptance(t *testing.T) {
	router, _ := setupApp(t)
	server := httptest.NewServer(router)
	defer server.Close()

	api := client.New(server.URL, nil)

	_, err := api.ListOrders(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsUnauthorized(err))
	assert.Equal(t, "Authorization token is required", err.Error())
}

// TestHealthEndpointAcceptance hits the health endpoint as a real HTTP client
func TestHealthEndpointAcceptance(t *testing.T) {
	router, _ := setupApp(t)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
}
