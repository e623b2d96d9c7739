package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/fakestore"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/mohit-1289/martx-backend/pkg/types"
	"github.com/shopspring/decimal"
)

type fakeClient struct {
	listFn func(ctx context.Context) ([]fakestore.Product, error)
	getFn  func(ctx context.Context, id int) (fakestore.Product, error)
}

func (f *fakeClient) ListProducts(ctx context.Context) ([]fakestore.Product, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) GetProduct(ctx context.Context, id int) (fakestore.Product, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return fakestore.Product{}, errors.New("no get configured")
}

func newServiceWithClient(t *testing.T, client Client, demoFallback bool) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Client:       client,
		Logger:       logger.New(logger.Options{ServiceName: "test"}),
		DemoFallback: demoFallback,
	})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}
	return svc
}

func upstreamProducts() []fakestore.Product {
	return []fakestore.Product{
		{ID: 1, Title: "Laptop Sleeve", Price: decimal.RequireFromString("39.95"), Description: "Padded sleeve", Category: "electronics", Rating: types.Rating{Rate: 4.0, Count: 10}},
		{ID: 2, Title: "Gold Ring", Price: decimal.RequireFromString("120.00"), Description: "Plain band", Category: "jewelery", Rating: types.Rating{Rate: 4.8, Count: 40}},
		{ID: 3, Title: "Rain Jacket", Price: decimal.RequireFromString("64.50"), Description: "Waterproof electronics-friendly pockets", Category: "men's clothing", Rating: types.Rating{Rate: 3.9, Count: 22}},
	}
}

func TestLoadReplacesCatalog(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) { return upstreamProducts(), nil },
	}, true)

	if svc.Loaded() {
		t.Fatal("catalog should start empty")
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !svc.Loaded() {
		t.Fatal("catalog should be loaded")
	}
	if got := len(svc.Products()); got != 3 {
		t.Fatalf("expected 3 products, got %d", got)
	}
}

func TestLoadFailureInstallsDemoCatalog(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) { return nil, errors.New("boom") },
	}, true)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("fallback must not surface an error, got: %v", err)
	}
	products := svc.Products()
	if len(products) == 0 {
		t.Fatal("demo catalog must be non-empty")
	}
	if products[0].Title != "Premium Laptop Backpack" {
		t.Fatalf("unexpected first demo product %q", products[0].Title)
	}
}

func TestLoadFailureWithoutFallbackIsError(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) { return nil, errors.New("boom") },
	}, false)

	err := svc.Load(context.Background())
	if err == nil {
		t.Fatal("expected error with fallback disabled")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected code %s", pkgerrors.As(err).Code())
	}
}

func TestGetByIDPrefersCache(t *testing.T) {
	calls := 0
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) { return upstreamProducts(), nil },
		getFn: func(ctx context.Context, id int) (fakestore.Product, error) {
			calls++
			return fakestore.Product{ID: id, Title: "Point Fetch"}, nil
		},
	}, true)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	p, err := svc.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Gold Ring" {
		t.Fatalf("expected cache hit, got %q", p.Title)
	}
	if calls != 0 {
		t.Fatalf("cache hit must not call upstream, got %d calls", calls)
	}

	p, err = svc.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Point Fetch" || calls != 1 {
		t.Fatalf("expected point fetch for cache miss, got %q (%d calls)", p.Title, calls)
	}
}

func TestGetByIDMissEverywhereIsNotFound(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		getFn: func(ctx context.Context, id int) (fakestore.Product, error) {
			return fakestore.Product{}, errors.New("timeout")
		},
	}, true)

	_, err := svc.GetByID(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected code %s", pkgerrors.As(err).Code())
	}
}

func TestApplyFilterMatchRules(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) { return upstreamProducts(), nil },
	}, true)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	all := svc.ApplyFilter("", CategoryAll)
	if len(all) != 3 {
		t.Fatalf("sentinel category must disable filtering, got %d", len(all))
	}

	jewelery := svc.ApplyFilter("", "jewelery")
	if len(jewelery) != 1 || jewelery[0].ID != 2 {
		t.Fatalf("unexpected category filter result %+v", jewelery)
	}

	// Query matches title, description, or category, case-insensitively.
	byTitle := svc.ApplyFilter("LAPTOP", CategoryAll)
	if len(byTitle) != 1 || byTitle[0].ID != 1 {
		t.Fatalf("unexpected title match %+v", byTitle)
	}
	byDescription := svc.ApplyFilter("waterproof", CategoryAll)
	if len(byDescription) != 1 || byDescription[0].ID != 3 {
		t.Fatalf("unexpected description match %+v", byDescription)
	}
	byCategory := svc.ApplyFilter("electronics", CategoryAll)
	if len(byCategory) != 2 {
		t.Fatalf("expected matches on category and description, got %d", len(byCategory))
	}

	// Both predicates apply with AND.
	combined := svc.ApplyFilter("laptop", "jewelery")
	if len(combined) != 0 {
		t.Fatalf("expected AND of predicates to exclude all, got %d", len(combined))
	}
}

func TestApplyFilterIsPureAndOrderPreserving(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) { return upstreamProducts(), nil },
	}, true)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	first := svc.ApplyFilter("e", CategoryAll)
	second := svc.ApplyFilter("e", CategoryAll)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical output lists")
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].ID > first[i].ID {
			t.Fatal("filtered order must match catalog order")
		}
	}
	if got := len(svc.Products()); got != 3 {
		t.Fatalf("filtering must not mutate the catalog, got %d products", got)
	}
}

func TestCategoriesDistinctInCatalogOrder(t *testing.T) {
	svc := newServiceWithClient(t, &fakeClient{
		listFn: func(ctx context.Context) ([]fakestore.Product, error) {
			products := upstreamProducts()
			products = append(products, fakestore.Product{ID: 4, Title: "USB Hub", Category: "electronics"})
			return products, nil
		},
	}, true)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	got := svc.Categories()
	want := []string{"electronics", "jewelery", "men's clothing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected categories %v", got)
	}
}
