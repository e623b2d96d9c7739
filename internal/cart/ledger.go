package cart

import (
	"context"

	"github.com/mohit-1289/martx-backend/internal/catalog"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry. Title, price, and image are snapshots taken at
// add time so the cart displays correctly even if the catalog reloads.
type LineItem struct {
	ProductID int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Resolver looks up product display data when the product is off-screen.
type Resolver interface {
	GetByID(ctx context.Context, id int) (catalog.Product, error)
}

// LedgerParams groups dependencies for a session's cart ledger.
type LedgerParams struct {
	SessionID string
	Catalog   Resolver
	Repo      Repository
	Logger    *logger.Logger
}

// Ledger holds one session's line items. It is not safe for concurrent use;
// the storefront controller serializes access.
type Ledger struct {
	sessionID string
	catalog   Resolver
	repo      Repository
	logg      *logger.Logger
	items     []LineItem
}

// NewLedger builds the ledger and restores any persisted cart. A corrupt or
// unreadable persisted cart degrades to an empty one.
func NewLedger(ctx context.Context, params LedgerParams) (*Ledger, error) {
	if params.SessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog resolver is required")
	}
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart logger is required")
	}

	ledger := &Ledger{
		sessionID: params.SessionID,
		catalog:   params.Catalog,
		repo:      params.Repo,
		logg:      params.Logger,
	}

	items, err := params.Repo.Load(ctx, params.SessionID)
	if err != nil {
		params.Logger.Warn(params.Logger.WithSessionID(ctx, params.SessionID), "cart restore failed, starting empty")
		items = nil
	}
	ledger.items = items
	return ledger, nil
}

// Add accumulates quantity onto an existing line item or snapshots a new one.
// The returned error is the persistence outcome; the in-memory mutation has
// already happened and callers log rather than fail on it.
func (l *Ledger) Add(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity += quantity
			return l.persist(ctx)
		}
	}

	product, err := l.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	l.items = append(l.items, LineItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})
	return l.persist(ctx)
}

// SetQuantity sets the exact quantity for a line item. A value of zero or
// below removes the item. Unknown product ids are a silent no-op.
func (l *Ledger) SetQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return l.Remove(ctx, productID)
	}
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity = quantity
			return l.persist(ctx)
		}
	}
	return nil
}

// Remove deletes the matching line item; absent ids are not an error.
func (l *Ledger) Remove(ctx context.Context, productID int) error {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return l.persist(ctx)
		}
	}
	return nil
}

// Clear empties the ledger and persists the empty state.
func (l *Ledger) Clear(ctx context.Context) error {
	l.items = nil
	return l.persist(ctx)
}

// Items returns a copy of the current line items in insertion order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Subtotal recomputes the sum of price times quantity on every call.
func (l *Ledger) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// ItemCount sums the quantities across all line items for the badge.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

func (l *Ledger) persist(ctx context.Context) error {
	if err := l.repo.Save(ctx, l.sessionID, l.items); err != nil {
		l.logg.Error(l.logg.WithSessionID(ctx, l.sessionID), "cart persist failed", err)
		return err
	}
	return nil
}
