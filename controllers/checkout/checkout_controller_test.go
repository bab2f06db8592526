package checkoutController

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"digimarket/config"
	"digimarket/models"
	"digimarket/store"
	checkoutValidator "digimarket/validators/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSnapshots is an in-memory stand-in for the GORM-backed store.
type memSnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memSnapshots) Load(key string, v any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m *memSnapshots) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func setupCheckoutTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{CheckoutDelayMs: 10}
	store.App = store.New(&memSnapshots{data: map[string][]byte{}}, store.UUIDGenerator{})

	checkoutsMu.Lock()
	checkouts = map[string]*CheckoutRecord{}
	checkoutsMu.Unlock()

	app := fiber.New()
	app.Post("/checkout", checkoutValidator.CreateCheckout(), CreateCheckout)
	app.Get("/checkout/:id", GetCheckout)
	return app
}

func postCheckout(t *testing.T, app *fiber.App, body string) (int, CheckoutRecord) {
	t.Helper()

	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out struct {
		Data CheckoutRecord `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out.Data
}

func getCheckout(t *testing.T, app *fiber.App, id string) (int, CheckoutRecord) {
	t.Helper()

	req := httptest.NewRequest("GET", "/checkout/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out struct {
		Data CheckoutRecord `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out.Data
}

func owns(id string) bool {
	for _, p := range store.App.Purchased() {
		if p.ID == id {
			return true
		}
	}
	return false
}

func TestCartCheckoutSettlement(t *testing.T) {
	app := setupCheckoutTest(t)

	require.True(t, store.App.AddToCart("c-1"))
	require.True(t, store.App.AddToCart("eb-1"))

	code, record := postCheckout(t, app, `{"fromCart":true,"paymentMethod":"gopay"}`)
	require.Equal(t, fiber.StatusAccepted, code)
	require.NotEmpty(t, record.ID)
	require.Len(t, record.Items, 2)

	assert.Equal(t, models.Subtotal(record.Items), record.Subtotal)
	assert.Equal(t, int(float64(record.Subtotal)*models.TaxRate), record.Tax)
	assert.Equal(t, record.Subtotal+record.Tax, record.Total)

	// Settlement records every item and clears the cart it came from.
	require.Eventually(t, func() bool {
		return owns("c-1") && owns("eb-1") && len(store.App.Cart()) == 0
	}, 2*time.Second, 10*time.Millisecond)

	code, settled := getCheckout(t, app, record.ID)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, StatusCompleted, settled.Status)
}

func TestBuyNowLeavesCartUntouched(t *testing.T) {
	app := setupCheckoutTest(t)

	require.True(t, store.App.AddToCart("c-1"))

	code, record := postCheckout(t, app, `{"productId":"eb-1","fromCart":false,"paymentMethod":"ovo"}`)
	require.Equal(t, fiber.StatusAccepted, code)
	require.Len(t, record.Items, 1)
	assert.Equal(t, 1, record.Items[0].Quantity)

	require.Eventually(t, func() bool { return owns("eb-1") }, 2*time.Second, 10*time.Millisecond)

	assert.False(t, owns("c-1"))
	cart := store.App.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "c-1", cart[0].ID)
}

func TestCreateCheckoutRejections(t *testing.T) {
	app := setupCheckoutTest(t)

	t.Run("empty cart", func(t *testing.T) {
		code, _ := postCheckout(t, app, `{"fromCart":true,"paymentMethod":"gopay"}`)
		assert.Equal(t, fiber.StatusBadRequest, code)
	})

	t.Run("unknown buy-now product", func(t *testing.T) {
		code, _ := postCheckout(t, app, `{"productId":"missing","fromCart":false,"paymentMethod":"gopay"}`)
		assert.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		code, _ := postCheckout(t, app, `{"fromCart":true,"paymentMethod":"cash"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	})
}

func TestGetCheckoutUnknownID(t *testing.T) {
	app := setupCheckoutTest(t)

	code, _ := getCheckout(t, app, "missing")
	assert.Equal(t, fiber.StatusNotFound, code)
}

// Polling a checkout while it settles must be safe: responses carry a
// copy of the record, never the shared pointer being mutated.
func TestGetCheckoutDuringSettlement(t *testing.T) {
	app := setupCheckoutTest(t)

	require.True(t, store.App.AddToCart("c-1"))

	_, record := postCheckout(t, app, `{"fromCart":true,"paymentMethod":"gopay"}`)
	require.NotEmpty(t, record.ID)

	deadline := time.Now().Add(2 * time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				req := httptest.NewRequest("GET", "/checkout/"+record.ID, nil)
				resp, err := app.Test(req, -1)
				if err != nil {
					return
				}
				var out struct {
					Data CheckoutRecord `json:"data"`
				}
				if json.NewDecoder(resp.Body).Decode(&out) != nil {
					return
				}
				if out.Data.Status == StatusCompleted {
					return
				}
			}
		}()
	}
	wg.Wait()

	_, settled := getCheckout(t, app, record.ID)
	assert.Equal(t, StatusCompleted, settled.Status)
}
