package storefront

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mohit-1289/martx-backend/internal/cart"
	"github.com/mohit-1289/martx-backend/internal/catalog"
	"github.com/mohit-1289/martx-backend/internal/orders"
	"github.com/mohit-1289/martx-backend/internal/theme"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/mohit-1289/martx-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

// ControllerParams groups dependencies for one session's controller.
type ControllerParams struct {
	SessionID string
	Catalog   catalog.Service
	Ledger    *cart.Ledger
	Orders    orders.Service
	Theme     theme.Service
	Logger    *logger.Logger
	Metrics   *metrics.StorefrontMetrics
	Surcharge decimal.Decimal
}

// Controller owns one session's storefront state. All user intents pass
// through Dispatch, which serializes them under a single mutex; this is the
// one-logical-task-at-a-time model the state machine assumes.
type Controller struct {
	mu sync.Mutex

	sessionID string
	catalog   catalog.Service
	ledger    *cart.Ledger
	orders    orders.Service
	theme     theme.Service
	logg      *logger.Logger
	metrics   *metrics.StorefrontMetrics
	surcharge decimal.Decimal

	page             Page
	searchQuery      string
	selectedCategory string
	currentProduct   *catalog.Product
	currentQuantity  int
	currentTheme     string
	lastOrder        *OrderView
	missingFields    []string
}

// NewController builds a controller starting on the home page.
func NewController(ctx context.Context, params ControllerParams) (*Controller, error) {
	if params.SessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog service is required")
	}
	if params.Ledger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart ledger is required")
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

	return &Controller{
		sessionID:        params.SessionID,
		catalog:          params.Catalog,
		ledger:           params.Ledger,
		orders:           params.Orders,
		theme:            params.Theme,
		logg:             params.Logger,
		metrics:          params.Metrics,
		surcharge:        params.Surcharge,
		page:             PageHome,
		selectedCategory: catalog.CategoryAll,
		currentQuantity:  1,
		currentTheme:     params.Theme.Get(ctx, params.SessionID),
	}, nil
}

// Dispatch reduces a single command into the session state and returns the
// resulting snapshot. The snapshot is valid even when an error is returned;
// it reflects whatever state the command left behind.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	c.metrics.IncCommand(cmd.name())
	defer func() {
		c.metrics.ObserveCommandDuration(cmd.name(), time.Since(start))
	}()

	ctx = c.logg.WithSessionID(ctx, c.sessionID)

	var err error
	switch cmd := cmd.(type) {
	case AddToCart:
		err = c.addToCart(ctx, cmd)
	case SetQuantity:
		c.logStorageOnly(ctx, c.ledger.SetQuantity(ctx, cmd.ProductID, cmd.Quantity))
	case RemoveFromCart:
		c.logStorageOnly(ctx, c.ledger.Remove(ctx, cmd.ProductID))
	case Search:
		c.searchQuery = normalizeQuery(cmd.Query)
	case SelectCategory:
		c.selectedCategory = normalizeCategory(cmd.Category)
	case ViewProduct:
		err = c.viewProduct(ctx, cmd.ProductID)
	case ChangeQuantity:
		c.currentQuantity = max(1, c.currentQuantity+cmd.Delta)
	case Navigate:
		err = c.navigate(ctx, cmd.Page)
	case SubmitCheckout:
		err = c.submitCheckout(ctx, cmd.Form)
	case ToggleTheme:
		c.toggleTheme(ctx)
	default:
		err = pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown command %T", cmd))
	}

	return c.snapshotLocked(), err
}

// Snapshot returns the current state without dispatching a command.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) addToCart(ctx context.Context, cmd AddToCart) error {
	quantity := cmd.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if err := c.ledger.Add(ctx, cmd.ProductID, quantity); err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return err
		}
		// Persistence failures never block the cart UX.
		c.logStorageOnly(ctx, err)
	}
	// The detail-page selector resets after a successful add.
	c.currentQuantity = 1
	return nil
}

func (c *Controller) viewProduct(ctx context.Context, productID int) error {
	// Clear stale detail before resolving so a slow or failed lookup never
	// renders the previous product.
	c.currentProduct = nil
	product, err := c.catalog.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	c.currentProduct = &product
	c.currentQuantity = 1
	c.page = PageProductDetail
	c.missingFields = nil
	return nil
}

func (c *Controller) navigate(ctx context.Context, page Page) error {
	if _, err := ParsePage(string(page)); err != nil {
		return err
	}

	c.missingFields = nil

	switch page {
	case PageCheckout:
		// Guard runs before any checkout-specific work.
		if c.ledger.ItemCount() == 0 {
			c.page = PageCart
			return nil
		}
	case PageHome:
		if !c.catalog.Loaded() {
			if err := c.catalog.Load(ctx); err != nil {
				c.logg.Error(c.logg.WithPage(ctx, string(page)), "catalog load failed", err)
			}
		}
	case PageProductDetail:
		if c.currentProduct == nil {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "product detail requires a resolved product")
		}
	}

	if page != PageProductDetail {
		c.currentProduct = nil
		c.currentQuantity = 1
	}
	c.page = page
	return nil
}

func (c *Controller) submitCheckout(ctx context.Context, form orders.CheckoutForm) error {
	if c.ledger.ItemCount() == 0 {
		// Silent redirect, mirroring the checkout page guard; no order is
		// created and no error is reported.
		c.page = PageCart
		return nil
	}

	if missing := c.orders.Validate(form); len(missing) > 0 {
		c.missingFields = missing
		return pkgerrors.New(pkgerrors.CodeValidation, "required fields are missing").
			WithDetails(map[string]any{"missing": missing})
	}

	order, err := c.orders.Assemble(c.sessionID, form, c.ledger.Items(), c.ledger.Subtotal())
	if err != nil {
		return err
	}

	// Storage failures during completion are logged by the service; the
	// order itself stands.
	c.logStorageOnly(ctx, c.orders.Complete(ctx, order, c.ledger))

	c.lastOrder = &OrderView{ID: order.ID, Total: order.Total.StringFixed(2)}
	c.missingFields = nil
	c.page = PageSuccess
	c.metrics.IncOrderCompleted()
	return nil
}

func (c *Controller) toggleTheme(ctx context.Context) {
	next, err := c.theme.Toggle(ctx, c.sessionID)
	c.logStorageOnly(ctx, err)
	c.currentTheme = next
}

// logStorageOnly records best-effort persistence failures without failing the
// user's action.
func (c *Controller) logStorageOnly(ctx context.Context, err error) {
	if err == nil {
		return
	}
	c.logg.Warn(c.logg.WithField(ctx, "storage_error", err.Error()), "continuing with in-memory state")
}

func (c *Controller) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Page:             string(c.page),
		SearchQuery:      c.searchQuery,
		SelectedCategory: c.selectedCategory,
		Products:         newProductViews(c.catalog.ApplyFilter(c.searchQuery, c.selectedCategory)),
		Categories:       c.catalog.Categories(),
		CurrentQuantity:  c.currentQuantity,
		Cart:             newCartView(c.ledger.Items(), c.ledger.Subtotal(), c.surcharge),
		Theme:            c.currentTheme,
		Order:            c.lastOrder,
		MissingFields:    c.missingFields,
	}
	if c.currentProduct != nil {
		view := newProductView(*c.currentProduct)
		snapshot.CurrentProduct = &view
	}
	return snapshot
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return catalog.CategoryAll
	}
	return category
}
