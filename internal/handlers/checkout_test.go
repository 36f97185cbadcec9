package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentro/internal/middleware"
	"zentro/internal/services/auth"
	"zentro/internal/services/cart"
	"zentro/internal/services/catalog"
	"zentro/internal/services/checkout"
	"zentro/internal/services/payment"
	"zentro/internal/store"
)

// approveRand forces every payment to succeed.
type approveRand struct{}

func (approveRand) Float64() float64 { return 0.99 }
func (approveRand) IntN(n int) int   { return 0 }

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	users := store.NewUserStore()
	orders := store.NewOrderLog()
	handoff := store.NewMemoryHandoff()

	authSvc, err := auth.NewService(users, testSecret, "password123")
	require.NoError(t, err)

	catalogSvc := catalog.NewService()
	carts := cart.NewManager()
	payments := payment.NewService(payment.Config{
		DeclineRate: payment.DefaultDeclineRate,
		Rand:        approveRand{},
		Sleep:       func(context.Context, time.Duration) error { return nil },
	})

	cfg := checkout.DefaultConfig()
	cfg.ProgressTick = time.Millisecond
	sessions := checkout.NewManager(payments, handoff, orders, cfg)

	app := fiber.New()
	SetupRoutes(app, Handlers{
		Auth:     NewAuthHandler(authSvc),
		Catalog:  NewCatalogHandler(catalogSvc),
		Cart:     NewCartHandler(carts, catalogSvc),
		Checkout: NewCheckoutHandler(sessions, carts, handoff),
		Payment:  NewPaymentHandler(payments),
		Admin:    NewAdminHandler(orders, catalogSvc, authSvc),
	}, middleware.NewAuth(testSecret))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tokens := body["data"].(map[string]any)["tokens"].(map[string]any)
	return tokens["access_token"].(string)
}

func TestCheckoutFlow_OverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "demo@zentro.com")

	// Empty cart cannot start a checkout.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/checkout/", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Fill the cart.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/cart/items", token, map[string]any{
		"product_id": "1", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Start checkout.
	resp, body := doJSON(t, app, http.MethodPost, "/api/checkout/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessionID := body["data"].(map[string]any)["session_id"].(string)

	base := fmt.Sprintf("/api/checkout/%s", sessionID)

	// Advancing with an empty form keeps step 1 and reports field errors.
	resp, body = doJSON(t, app, http.MethodPost, base+"/next", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["step"])
	assert.Len(t, data["errors"].(map[string]any), 7)

	// Fill everything and walk to review.
	resp, _ = doJSON(t, app, http.MethodPatch, base+"/fields", token, map[string]string{
		"email": "demo@zentro.com", "firstName": "Demo", "lastName": "User",
		"address": "123 Main Street", "city": "New York", "state": "NY", "zipCode": "10001",
		"cardNumber": "4111111111111111", "expiryDate": "1227", "cvv": "123", "nameOnCard": "Demo User",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for range 2 {
		resp, body = doJSON(t, app, http.MethodPost, base+"/next", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.EqualValues(t, 3, body["data"].(map[string]any)["step"])

	// Submit and poll until settled.
	resp, _ = doJSON(t, app, http.MethodPost, base+"/submit", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, body = doJSON(t, app, http.MethodGet, base, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data = body["data"].(map[string]any)
		if data["completed"].(bool) || !data["processing"].(bool) {
			break
		}
		require.True(t, time.Now().Before(deadline), "payment never settled")
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, data["completed"].(bool))
	assert.EqualValues(t, 100, data["progress"])

	// Confirmation reads once, then reports absence.
	resp, body = doJSON(t, app, http.MethodGet, "/api/checkout/confirmation", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := body["data"].(map[string]any)
	assert.Regexp(t, `^TXN-\d+-[A-Z0-9]{6}$`, summary["transaction_id"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/checkout/confirmation", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The cart was cleared by the successful payment.
	resp, body = doJSON(t, app, http.MethodGet, "/api/cart/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["data"].(map[string]any)["total_items"])
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/admin/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	userToken := login(t, app, "demo@zentro.com")
	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/orders", userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := login(t, app, "admin@zentro.com")
	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCheckout_SessionOwnership(t *testing.T) {
	app := newTestApp(t)
	demoToken := login(t, app, "demo@zentro.com")
	johnToken := login(t, app, "john@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/cart/items", demoToken, map[string]any{
		"product_id": "1", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/checkout/", demoToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessionID := body["data"].(map[string]any)["session_id"].(string)

	// Another user cannot see the session.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/checkout/"+sessionID, johnToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
