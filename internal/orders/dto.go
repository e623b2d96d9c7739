package orders

import (
	"time"

	"github.com/mohit-1289/martx-backend/internal/cart"
	"github.com/shopspring/decimal"
)

// CheckoutForm carries the raw checkout submission. Fields are validated by
// presence only; format checks are intentionally out of scope.
type CheckoutForm struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
}

// Order is the immutable record produced once per completed checkout.
type Order struct {
	ID        string
	SessionID string
	Form      CheckoutForm
	Items     []cart.LineItem
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}
