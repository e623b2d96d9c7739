package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mohit-1289/martx-backend/internal/cart"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const orderIDPrefix = "MX"

// requiredFields enumerates the checkout fields that must be present, in
// report order.
var requiredFields = []struct {
	name  string
	value func(CheckoutForm) string
}{
	{"fullName", func(f CheckoutForm) string { return f.FullName }},
	{"email", func(f CheckoutForm) string { return f.Email }},
	{"phone", func(f CheckoutForm) string { return f.Phone }},
	{"address", func(f CheckoutForm) string { return f.Address }},
	{"city", func(f CheckoutForm) string { return f.City }},
	{"postalCode", func(f CheckoutForm) string { return f.PostalCode }},
	{"country", func(f CheckoutForm) string { return f.Country }},
	{"paymentMethod", func(f CheckoutForm) string { return f.PaymentMethod }},
}

// Ledger is the cart surface Complete needs to empty after an order.
type Ledger interface {
	Clear(ctx context.Context) error
}

// ServiceParams groups dependencies for the order assembler.
type ServiceParams struct {
	Repo      Repository
	Logger    *logger.Logger
	Surcharge decimal.Decimal
}

// Service validates checkout submissions and produces immutable orders.
type Service interface {
	// Validate returns the names of required fields that are missing or
	// empty, in a fixed order. An empty result means the form is valid.
	Validate(form CheckoutForm) []string
	Assemble(sessionID string, form CheckoutForm, items []cart.LineItem, subtotal decimal.Decimal) (Order, error)
	// Complete archives the order and empties the ledger. It is one-way;
	// the returned error aggregates storage failures for the caller to log,
	// never to surface to the user.
	Complete(ctx context.Context, order Order, ledger Ledger) error
}

type service struct {
	repo      Repository
	logg      *logger.Logger
	surcharge decimal.Decimal
}

// NewService builds the order assembler with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order repo is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order logger is required")
	}
	if params.Surcharge.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping surcharge must not be negative")
	}
	return &service{
		repo:      params.Repo,
		logg:      params.Logger,
		surcharge: params.Surcharge,
	}, nil
}

func (s *service) Validate(form CheckoutForm) []string {
	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(field.value(form)) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func (s *service) Assemble(sessionID string, form CheckoutForm, items []cart.LineItem, subtotal decimal.Decimal) (Order, error) {
	if missing := s.Validate(form); len(missing) > 0 {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "required fields are missing").
			WithDetails(map[string]any{"missing": missing})
	}
	if len(items) == 0 {
		return Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot assemble an order from an empty cart")
	}

	snapshot := make([]cart.LineItem, len(items))
	copy(snapshot, items)

	return Order{
		ID:        newOrderID(),
		SessionID: sessionID,
		Form:      form,
		Items:     snapshot,
		Subtotal:  subtotal,
		Shipping:  s.surcharge,
		Total:     subtotal.Add(s.surcharge),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *service) Complete(ctx context.Context, order Order, ledger Ledger) error {
	var errs error
	if err := s.repo.Archive(ctx, order); err != nil {
		errs = multierr.Append(errs, err)
	}
	if ledger != nil {
		if err := ledger.Clear(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		s.logg.Error(s.logg.WithField(ctx, "order_id", order.ID), "order completion storage failures", errs)
	}
	return errs
}

// newOrderID keeps the original MX display prefix but backs it with a uuid so
// ids never collide within or across sessions.
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderIDPrefix + strings.ToUpper(raw[:12])
}
