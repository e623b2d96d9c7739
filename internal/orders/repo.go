package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mohit-1289/martx-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository archives completed orders in the local store.
type Repository interface {
	Archive(ctx context.Context, order Order) error
	FindByID(ctx context.Context, orderID string) (models.Order, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds the gorm-backed order archive.
func NewRepository(db *gorm.DB) (Repository, error) {
	if db == nil {
		return nil, errors.New("db handle is required")
	}
	return &repository{db: db}, nil
}

// AutoMigrate creates the archive tables when they do not exist yet.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderLineItem{})
}

func (r *repository) Archive(ctx context.Context, order Order) error {
	record := toModel(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("archiving order %s: %w", order.ID, err)
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	var record models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&record, "id = ?", orderID).Error
	if err != nil {
		return models.Order{}, err
	}
	return record, nil
}

func toModel(order Order) models.Order {
	items := make([]models.OrderLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderLineItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
	}
	return models.Order{
		ID:            order.ID,
		SessionID:     order.SessionID,
		FullName:      order.Form.FullName,
		Email:         order.Form.Email,
		Phone:         order.Form.Phone,
		Address:       order.Form.Address,
		City:          order.Form.City,
		PostalCode:    order.Form.PostalCode,
		Country:       order.Form.Country,
		PaymentMethod: order.Form.PaymentMethod,
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Total:         order.Total,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}
