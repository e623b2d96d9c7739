package catalog

import (
	"github.com/mohit-1289/martx-backend/pkg/fakestore"
	"github.com/mohit-1289/martx-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Product is an immutable catalog entry owned by the cache once fetched.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      types.Rating    `json:"rating"`
}

func fromWire(p fakestore.Product) Product {
	return Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
	}
}

func fromWireList(products []fakestore.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, fromWire(p))
	}
	return out
}
