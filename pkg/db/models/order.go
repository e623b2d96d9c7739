package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the immutable record produced once per completed checkout.
type Order struct {
	ID            string          `gorm:"column:id;primaryKey"`
	SessionID     string          `gorm:"column:session_id;not null;index"`
	FullName      string          `gorm:"column:full_name;not null"`
	Email         string          `gorm:"column:email;not null"`
	Phone         string          `gorm:"column:phone;not null"`
	Address       string          `gorm:"column:address;not null"`
	City          string          `gorm:"column:city;not null"`
	PostalCode    string          `gorm:"column:postal_code;not null"`
	Country       string          `gorm:"column:country;not null"`
	PaymentMethod string          `gorm:"column:payment_method;not null"`
	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2);not null"`
	Shipping      decimal.Decimal `gorm:"column:shipping;type:decimal(12,2);not null"`
	Total         decimal.Decimal `gorm:"column:total;type:decimal(12,2);not null"`
	Items         []OrderLineItem `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
