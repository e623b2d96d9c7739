package catalog

import (
	"github.com/mohit-1289/martx-backend/pkg/types"
	"github.com/shopspring/decimal"
)

func placeholderImage(label string) string {
	return "data:image/svg+xml;charset=utf8,%3Csvg xmlns='http://www.w3.org/2000/svg' width='300' height='300'%3E%3Crect width='300' height='300' fill='%23f0f0f0'/%3E%3Ctext x='150' y='150' text-anchor='middle' font-size='16'%3E" + label + "%3C/text%3E%3C/svg%3E"
}

// DemoCatalog returns the fixed offline catalog installed when the upstream
// fetch fails. The list is deterministic so the UI always has something to
// render.
func DemoCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Title:       "Premium Laptop Backpack",
			Price:       decimal.RequireFromString("89.95"),
			Description: "Durable laptop backpack perfect for work and travel with multiple compartments.",
			Category:    "electronics",
			Image:       placeholderImage("Backpack"),
			Rating:      types.Rating{Rate: 4.2, Count: 89},
		},
		{
			ID:          2,
			Title:       "Wireless Bluetooth Headphones",
			Price:       decimal.RequireFromString("199.99"),
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Category:    "electronics",
			Image:       placeholderImage("Headphones"),
			Rating:      types.Rating{Rate: 4.7, Count: 156},
		},
		{
			ID:          3,
			Title:       "Classic Cotton T-Shirt",
			Price:       decimal.RequireFromString("24.99"),
			Description: "Comfortable 100% cotton t-shirt available in multiple colors and sizes.",
			Category:    "men's clothing",
			Image:       placeholderImage("T-Shirt"),
			Rating:      types.Rating{Rate: 4.1, Count: 203},
		},
		{
			ID:          4,
			Title:       "Elegant Silver Necklace",
			Price:       decimal.RequireFromString("149.50"),
			Description: "Beautiful sterling silver necklace with intricate pendant design.",
			Category:    "jewelery",
			Image:       placeholderImage("Necklace"),
			Rating:      types.Rating{Rate: 4.5, Count: 78},
		},
		{
			ID:          5,
			Title:       "Women's Summer Dress",
			Price:       decimal.RequireFromString("79.99"),
			Description: "Elegant summer dress perfect for casual and semi-formal occasions.",
			Category:    "women's clothing",
			Image:       placeholderImage("Dress"),
			Rating:      types.Rating{Rate: 4.3, Count: 124},
		},
		{
			ID:          6,
			Title:       "Gaming Mouse",
			Price:       decimal.RequireFromString("59.99"),
			Description: "High-precision gaming mouse with customizable RGB lighting and programmable buttons.",
			Category:    "electronics",
			Image:       placeholderImage("Mouse"),
			Rating:      types.Rating{Rate: 4.6, Count: 92},
		},
	}
}
