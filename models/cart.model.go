package models

// CartItem is a product plus a purchase quantity. The product id is the
// uniqueness key; adding the same product again increments Quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns the cart total before tax, in the smallest currency unit.
func Subtotal(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// PaymentMethods is the fixed set of simulated payment options.
var PaymentMethods = []PaymentMethod{
	{ID: "credit-card", Name: "Kartu Kredit / Debit", Icon: "fa-solid fa-credit-card", Description: "Visa, Mastercard, JCB"},
	{ID: "gopay", Name: "GoPay", Icon: "fa-solid fa-wallet", Description: "Pembayaran instan via aplikasi Gojek"},
	{ID: "ovo", Name: "OVO", Icon: "fa-solid fa-mobile-screen", Description: "Pembayaran digital via OVO"},
	{ID: "bank-transfer", Name: "Virtual Account", Icon: "fa-solid fa-building-columns", Description: "BCA, Mandiri, BNI"},
	{ID: "paypal", Name: "PayPal", Icon: "fa-brands fa-paypal", Description: "Pembayaran internasional aman"},
}

// ValidPaymentMethod reports whether id names one of PaymentMethods.
func ValidPaymentMethod(id string) bool {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// TaxRate is the PPN rate applied at checkout.
const TaxRate = 0.11
