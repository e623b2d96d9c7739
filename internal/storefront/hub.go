package storefront

import (
	"context"
	"sync"

	"github.com/mohit-1289/martx-backend/internal/cart"
	"github.com/mohit-1289/martx-backend/internal/catalog"
	"github.com/mohit-1289/martx-backend/internal/orders"
	"github.com/mohit-1289/martx-backend/internal/theme"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/mohit-1289/martx-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

// HubParams groups the shared services every session controller draws on.
type HubParams struct {
	Catalog   catalog.Service
	CartRepo  cart.Repository
	Orders    orders.Service
	Theme     theme.Service
	Logger    *logger.Logger
	Metrics   *metrics.StorefrontMetrics
	Surcharge decimal.Decimal
}

// Hub hands out one controller per storefront session, creating it on first
// use. Catalog, orders, and theme services are shared; each session gets its
// own cart ledger restored from the key/value store.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Controller

	catalog   catalog.Service
	cartRepo  cart.Repository
	orders    orders.Service
	theme     theme.Service
	logg      *logger.Logger
	metrics   *metrics.StorefrontMetrics
	surcharge decimal.Decimal
}

// NewHub builds the session hub with the shared dependencies.
func NewHub(params HubParams) (*Hub, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog service is required")
	}
	if params.CartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repository is required")
	}
	if params.Orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "orders service is required")
	}
	if params.Theme == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "theme service is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}

	return &Hub{
		sessions:  make(map[string]*Controller),
		catalog:   params.Catalog,
		cartRepo:  params.CartRepo,
		orders:    params.Orders,
		theme:     params.Theme,
		logg:      params.Logger,
		metrics:   params.Metrics,
		surcharge: params.Surcharge,
	}, nil
}

// Session returns the controller for the given session id, restoring the
// persisted cart on first use.
func (h *Hub) Session(ctx context.Context, sessionID string) (*Controller, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if controller, ok := h.sessions[sessionID]; ok {
		return controller, nil
	}

	ledger, err := cart.NewLedger(ctx, cart.LedgerParams{
		SessionID: sessionID,
		Catalog:   h.catalog,
		Repo:      h.cartRepo,
		Logger:    h.logg,
	})
	if err != nil {
		return nil, err
	}

	controller, err := NewController(ctx, ControllerParams{
		SessionID: sessionID,
		Catalog:   h.catalog,
		Ledger:    ledger,
		Orders:    h.orders,
		Theme:     h.theme,
		Logger:    h.logg,
		Metrics:   h.metrics,
		Surcharge: h.surcharge,
	})
	if err != nil {
		return nil, err
	}

	h.sessions[sessionID] = controller
	return controller, nil
}
