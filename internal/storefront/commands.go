package storefront

import "github.com/mohit-1289/martx-backend/internal/orders"

// Command is a discrete user intent fed into the controller's reducer. The
// set is closed; input sources (HTTP handlers here, a DOM originally) only
// construct commands and never mutate state themselves.
type Command interface {
	name() string
}

// AddToCart adds quantity of a product to the ledger.
type AddToCart struct {
	ProductID int
	Quantity  int
}

// SetQuantity sets a cart line to an exact quantity; zero or below removes it.
type SetQuantity struct {
	ProductID int
	Quantity  int
}

// RemoveFromCart deletes a cart line.
type RemoveFromCart struct {
	ProductID int
}

// Search updates the search query and recomputes the filtered view.
type Search struct {
	Query string
}

// SelectCategory updates the category filter; empty means "all".
type SelectCategory struct {
	Category string
}

// ViewProduct resolves a product and enters the detail page.
type ViewProduct struct {
	ProductID int
}

// ChangeQuantity nudges the detail-page quantity selector, flooring at 1.
type ChangeQuantity struct {
	Delta int
}

// Navigate moves to another page, subject to the transition guards.
type Navigate struct {
	Page Page
}

// SubmitCheckout validates the form and, when valid, completes an order.
type SubmitCheckout struct {
	Form orders.CheckoutForm
}

// ToggleTheme flips the light/dark preference.
type ToggleTheme struct{}

func (AddToCart) name() string      { return "add_to_cart" }
func (SetQuantity) name() string    { return "set_quantity" }
func (RemoveFromCart) name() string { return "remove_from_cart" }
func (Search) name() string         { return "search" }
func (SelectCategory) name() string { return "select_category" }
func (ViewProduct) name() string    { return "view_product" }
func (ChangeQuantity) name() string { return "change_quantity" }
func (Navigate) name() string       { return "navigate" }
func (SubmitCheckout) name() string { return "submit_checkout" }
func (ToggleTheme) name() string    { return "toggle_theme" }
