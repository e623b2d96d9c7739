package catalog

import (
	"context"
	"strings"
	"sync"

	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/fakestore"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/mohit-1289/martx-backend/pkg/metrics"
)

const (
	sourceUpstream = "upstream"
	sourceDemo     = "demo"
)

// Client is the upstream surface the cache depends on.
type Client interface {
	ListProducts(ctx context.Context) ([]fakestore.Product, error)
	GetProduct(ctx context.Context, id int) (fakestore.Product, error)
}

// ServiceParams groups dependencies for the catalog cache.
type ServiceParams struct {
	Client       Client
	Logger       *logger.Logger
	Metrics      *metrics.StorefrontMetrics
	DemoFallback bool
}

// Service exposes the catalog cache and its derived filtered view.
type Service interface {
	// Load replaces the full product list from upstream. A fetch failure
	// installs the demo catalog instead when the fallback is enabled; that
	// path returns nil because it is policy, not an error state.
	Load(ctx context.Context) error
	GetByID(ctx context.Context, id int) (Product, error)
	// ApplyFilter is pure over the cached catalog: it never mutates the
	// underlying list and preserves catalog order.
	ApplyFilter(query, category string) []Product
	Products() []Product
	Categories() []string
	Loaded() bool
}

type service struct {
	client       Client
	logg         *logger.Logger
	metrics      *metrics.StorefrontMetrics
	demoFallback bool

	mu       sync.RWMutex
	products []Product
}

// NewService builds the catalog cache with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog logger is required")
	}
	return &service{
		client:       params.Client,
		logg:         params.Logger,
		metrics:      params.Metrics,
		demoFallback: params.DemoFallback,
	}, nil
}

func (s *service) Load(ctx context.Context) error {
	fetched, err := s.client.ListProducts(ctx)
	if err != nil {
		if !s.demoFallback {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalog")
		}
		s.logg.Warn(s.logg.WithField(ctx, "fallback", sourceDemo), "catalog fetch failed, installing demo catalog")
		s.replace(DemoCatalog())
		s.metrics.IncCatalogLoad(sourceDemo)
		return nil
	}

	s.replace(fromWireList(fetched))
	s.metrics.IncCatalogLoad(sourceUpstream)
	return nil
}

func (s *service) replace(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *service) GetByID(ctx context.Context, id int) (Product, error) {
	s.mu.RLock()
	for _, p := range s.products {
		if p.ID == id {
			s.mu.RUnlock()
			return p, nil
		}
	}
	s.mu.RUnlock()

	fetched, err := s.client.GetProduct(ctx, id)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return Product{}, err
		}
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
	}
	return fromWire(fetched), nil
}

func (s *service) ApplyFilter(query, category string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if category == "" {
		category = CategoryAll
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesQuery(p Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func (s *service) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	categories := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

func (s *service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products) > 0
}
