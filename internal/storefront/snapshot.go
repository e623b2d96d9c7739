package storefront

import (
	"github.com/mohit-1289/martx-backend/internal/cart"
	"github.com/mohit-1289/martx-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Snapshot is the display-safe view-model handed to the view layer after
// every dispatch. It contains only primitive fields; markup generation stays
// entirely outside the core.
type Snapshot struct {
	Page             string        `json:"page"`
	SearchQuery      string        `json:"searchQuery"`
	SelectedCategory string        `json:"selectedCategory"`
	Products         []ProductView `json:"products"`
	Categories       []string      `json:"categories"`
	CurrentProduct   *ProductView  `json:"currentProduct,omitempty"`
	CurrentQuantity  int           `json:"currentQuantity"`
	Cart             CartView      `json:"cart"`
	Theme            string        `json:"theme"`
	Order            *OrderView    `json:"order,omitempty"`
	MissingFields    []string      `json:"missingFields,omitempty"`
}

// ProductView is a render-ready product with money formatted as text.
type ProductView struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	RatingRate  float64 `json:"ratingRate"`
	RatingCount int     `json:"ratingCount"`
}

// CartView carries the cart contents plus freshly computed totals.
type CartView struct {
	Items     []CartLineView `json:"items"`
	ItemCount int            `json:"itemCount"`
	Subtotal  string         `json:"subtotal"`
	Shipping  string         `json:"shipping"`
	Total     string         `json:"total"`
}

// CartLineView is one render-ready cart line.
type CartLineView struct {
	ProductID int    `json:"id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unitPrice"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// OrderView is the confirmation shown on the success page.
type OrderView struct {
	ID    string `json:"id"`
	Total string `json:"total"`
}

func newProductView(p catalog.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		RatingRate:  p.Rating.Rate,
		RatingCount: p.Rating.Count,
	}
}

func newProductViews(products []catalog.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}

func newCartView(items []cart.LineItem, subtotal, shipping decimal.Decimal) CartView {
	lines := make([]CartLineView, 0, len(items))
	count := 0
	for _, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, CartLineView{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.Price.StringFixed(2),
			Image:     item.Image,
			Quantity:  item.Quantity,
			LineTotal: lineTotal.StringFixed(2),
		})
		count += item.Quantity
	}
	return CartView{
		Items:     lines,
		ItemCount: count,
		Subtotal:  subtotal.StringFixed(2),
		Shipping:  shipping.StringFixed(2),
		Total:     subtotal.Add(shipping).StringFixed(2),
	}
}
