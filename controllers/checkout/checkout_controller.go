package checkoutController

import (
	"log"
	"sync"
	"time"

	"digimarket/config"
	"digimarket/middleware"
	"digimarket/models"
	"digimarket/store"
	"digimarket/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// CheckoutRecord is one simulated payment in flight or settled.
type CheckoutRecord struct {
	ID            string            `json:"id"`
	Items         []models.CartItem `json:"items"`
	PaymentMethod string            `json:"paymentMethod"`
	FromCart      bool              `json:"fromCart"`
	Status        string            `json:"status"`
	Subtotal      int               `json:"subtotal"`
	Tax           int               `json:"tax"`
	Total         int               `json:"total"`
	CreatedAt     time.Time         `json:"createdAt"`
}

var (
	checkoutsMu sync.Mutex
	checkouts   = map[string]*CheckoutRecord{}
)

// ListPaymentMethods returns the fixed set of simulated payment options.
func ListPaymentMethods(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment methods fetched!", models.PaymentMethods)
}

// CreateCheckout starts a simulated payment for the whole cart or a
// single buy-now product. Settlement happens asynchronously after the
// configured delay; other actions stay interactive meanwhile, and a
// second submission while one is pending is not prevented.
func CreateCheckout(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCheckout").(*struct {
		ProductId     string `json:"productId"`
		FromCart      bool   `json:"fromCart"`
		PaymentMethod string `json:"paymentMethod"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email, _ := c.Locals("email").(string)
	name, _ := c.Locals("name").(string)

	var items []models.CartItem
	if reqData.FromCart {
		items = store.App.Cart()
		if len(items) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
		}
	} else {
		product, found := store.App.ProductByID(reqData.ProductId)
		if !found {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
		}
		items = []models.CartItem{{Product: product, Quantity: 1}}
	}

	subtotal := models.Subtotal(items)
	tax := int(float64(subtotal) * models.TaxRate)
	record := &CheckoutRecord{
		ID:            uuid.NewString(),
		Items:         items,
		PaymentMethod: reqData.PaymentMethod,
		FromCart:      reqData.FromCart,
		Status:        StatusProcessing,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		CreatedAt:     time.Now(),
	}

	checkoutsMu.Lock()
	checkouts[record.ID] = record
	checkoutsMu.Unlock()

	delay := time.Duration(config.AppConfig.CheckoutDelayMs) * time.Millisecond
	time.AfterFunc(delay, func() {
		settle(record, name, email)
	})

	// Respond with a copy taken under the lock; settlement may already
	// be mutating the shared record.
	checkoutsMu.Lock()
	snapshot := *record
	checkoutsMu.Unlock()

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Payment is being processed!", snapshot)
}

// settle applies the purchase. A late settlement is applied even if the
// originating view has since changed.
func settle(record *CheckoutRecord, name, email string) {
	store.App.RecordPurchase(record.Items)
	if record.FromCart {
		store.App.ClearCart()
	}

	checkoutsMu.Lock()
	record.Status = StatusCompleted
	checkoutsMu.Unlock()

	// Receipt is best-effort; the purchase stands regardless.
	go func() {
		if err := utils.SendReceiptEmail(email, name, record.Items, record.PaymentMethod); err != nil {
			log.Printf("Failed to send receipt email: %v", err)
		}
	}()
}

// GetCheckout reports a pending or settled checkout by id. The record
// is copied under the lock so serialization never races a settlement.
func GetCheckout(c *fiber.Ctx) error {
	checkoutsMu.Lock()
	record, found := checkouts[c.Params("id")]
	var snapshot CheckoutRecord
	if found {
		snapshot = *record
	}
	checkoutsMu.Unlock()

	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Checkout not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout fetched!", snapshot)
}
