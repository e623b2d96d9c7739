package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineItem snapshots one cart line at the moment the order was placed.
type OrderLineItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   string          `gorm:"column:order_id;not null;index"`
	ProductID int             `gorm:"column:product_id;not null"`
	Title     string          `gorm:"column:title;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null"`
	Image     string          `gorm:"column:image"`
	Quantity  int             `gorm:"column:quantity;not null"`
}
