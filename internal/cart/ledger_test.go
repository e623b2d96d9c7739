package cart

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/mohit-1289/martx-backend/internal/catalog"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	saved  [][]LineItem
	saveFn func(ctx context.Context, sessionID string, items []LineItem) error
	loadFn func(ctx context.Context, sessionID string) ([]LineItem, error)
}

func (f *fakeRepo) Save(ctx context.Context, sessionID string, items []LineItem) error {
	snapshot := make([]LineItem, len(items))
	copy(snapshot, items)
	f.saved = append(f.saved, snapshot)
	if f.saveFn != nil {
		return f.saveFn(ctx, sessionID, items)
	}
	return nil
}

func (f *fakeRepo) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	if f.loadFn != nil {
		return f.loadFn(ctx, sessionID)
	}
	return nil, nil
}

type fakeResolver struct {
	products map[int]catalog.Product
}

func (f *fakeResolver) GetByID(ctx context.Context, id int) (catalog.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func testResolver() *fakeResolver {
	return &fakeResolver{products: map[int]catalog.Product{
		1: {ID: 1, Title: "Premium Laptop Backpack", Price: decimal.RequireFromString("89.95"), Image: "img-1"},
		2: {ID: 2, Title: "Wireless Bluetooth Headphones", Price: decimal.RequireFromString("199.99"), Image: "img-2"},
	}}
}

func newTestLedger(t *testing.T, repo Repository) *Ledger {
	t.Helper()
	ledger, err := NewLedger(context.Background(), LedgerParams{
		SessionID: "session-1",
		Catalog:   testResolver(),
		Repo:      repo,
		Logger:    logger.New(logger.Options{ServiceName: "test"}),
	})
	if err != nil {
		t.Fatalf("unexpected ledger error: %v", err)
	}
	return ledger
}

func TestAddAccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	ledger := newTestLedger(t, repo)

	if err := ledger.Add(ctx, 1, 1); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if err := ledger.Add(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	items := ledger.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single line item, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected accumulated quantity 3, got %d", items[0].Quantity)
	}
	if got := ledger.Subtotal().StringFixed(2); got != "269.85" {
		t.Fatalf("expected subtotal 269.85, got %s", got)
	}
	if len(repo.saved) != 2 {
		t.Fatalf("every mutation must persist, got %d saves", len(repo.saved))
	}
}

func TestAddSnapshotsProductFields(t *testing.T) {
	ctx := context.Background()
	resolver := testResolver()
	ledger, err := NewLedger(ctx, LedgerParams{
		SessionID: "session-1",
		Catalog:   resolver,
		Repo:      &fakeRepo{},
		Logger:    logger.New(logger.Options{ServiceName: "test"}),
	})
	if err != nil {
		t.Fatalf("unexpected ledger error: %v", err)
	}

	if err := ledger.Add(ctx, 2, 1); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	// A catalog reload must not retroactively change the cart display.
	resolver.products[2] = catalog.Product{ID: 2, Title: "Renamed", Price: decimal.RequireFromString("1.00")}

	items := ledger.Items()
	if items[0].Title != "Wireless Bluetooth Headphones" {
		t.Fatalf("expected snapshotted title, got %q", items[0].Title)
	}
	if items[0].Price.StringFixed(2) != "199.99" {
		t.Fatalf("expected snapshotted price, got %s", items[0].Price)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	ledger := newTestLedger(t, &fakeRepo{})
	if err := ledger.Add(context.Background(), 1, 0); err == nil {
		t.Fatal("expected validation error for zero quantity")
	}
}

func TestAddUnknownProduct(t *testing.T) {
	ledger := newTestLedger(t, &fakeRepo{})
	err := ledger.Add(context.Background(), 99, 1)
	if err == nil {
		t.Fatal("expected not found error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected code %s", pkgerrors.As(err).Code())
	}
	if len(ledger.Items()) != 0 {
		t.Fatal("failed add must not create a line item")
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	viaSet := newTestLedger(t, &fakeRepo{})
	viaRemove := newTestLedger(t, &fakeRepo{})
	for _, l := range []*Ledger{viaSet, viaRemove} {
		if err := l.Add(ctx, 1, 2); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
		if err := l.Add(ctx, 2, 1); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
	}

	if err := viaSet.SetQuantity(ctx, 1, 0); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if err := viaRemove.Remove(ctx, 1); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}

	if !reflect.DeepEqual(viaSet.Items(), viaRemove.Items()) {
		t.Fatalf("setQuantity(id, 0) and remove(id) must produce identical ledgers:\n%+v\n%+v", viaSet.Items(), viaRemove.Items())
	}
}

func TestSetQuantityExactNoUpperClamp(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, &fakeRepo{})
	if err := ledger.Add(ctx, 1, 1); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if err := ledger.SetQuantity(ctx, 1, 500); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if got := ledger.Items()[0].Quantity; got != 500 {
		t.Fatalf("expected exact quantity 500, got %d", got)
	}
}

func TestSetQuantityUnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	ledger := newTestLedger(t, repo)
	if err := ledger.Add(ctx, 1, 1); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	before := ledger.Items()

	if err := ledger.SetQuantity(ctx, 42, 3); err != nil {
		t.Fatalf("unknown id must be a no-op, got: %v", err)
	}
	if !reflect.DeepEqual(before, ledger.Items()) {
		t.Fatal("unknown id must leave the ledger unchanged")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("no-op must not persist, got %d saves", len(repo.saved))
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	ledger := newTestLedger(t, &fakeRepo{})
	if err := ledger.Remove(context.Background(), 7); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
}

func TestItemCount(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, &fakeRepo{})
	if got := ledger.ItemCount(); got != 0 {
		t.Fatalf("expected empty count, got %d", got)
	}
	if err := ledger.Add(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if err := ledger.Add(ctx, 2, 3); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if got := ledger.ItemCount(); got != 5 {
		t.Fatalf("expected badge count 5, got %d", got)
	}
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{saveFn: func(ctx context.Context, sessionID string, items []LineItem) error {
		return errors.New("storage down")
	}}
	ledger := newTestLedger(t, repo)

	if err := ledger.Add(ctx, 1, 1); err == nil {
		t.Fatal("expected persistence error to be reported")
	}
	if len(ledger.Items()) != 1 {
		t.Fatal("in-memory mutation must survive a storage failure")
	}
}

func TestCorruptPersistedCartDegradesToEmpty(t *testing.T) {
	repo := &fakeRepo{loadFn: func(ctx context.Context, sessionID string) ([]LineItem, error) {
		return nil, errors.New("unparseable cart")
	}}
	ledger := newTestLedger(t, repo)
	if len(ledger.Items()) != 0 {
		t.Fatal("corrupt persisted cart must degrade to empty")
	}
}

func TestLedgerRestoresPersistedItems(t *testing.T) {
	stored := []LineItem{{ProductID: 1, Title: "Backpack", Price: decimal.RequireFromString("89.95"), Quantity: 2}}
	repo := &fakeRepo{loadFn: func(ctx context.Context, sessionID string) ([]LineItem, error) {
		return stored, nil
	}}
	ledger := newTestLedger(t, repo)
	if !reflect.DeepEqual(ledger.Items(), stored) {
		t.Fatalf("expected restored items %+v, got %+v", stored, ledger.Items())
	}
}

func TestLineItemRoundTrip(t *testing.T) {
	original := []LineItem{
		{ProductID: 1, Title: "Backpack", Price: decimal.RequireFromString("89.95"), Image: "img-1", Quantity: 3},
		{ProductID: 2, Title: "Headphones", Price: decimal.RequireFromString("199.99"), Image: "img-2", Quantity: 1},
	}
	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var restored []LineItem
	if err := json.Unmarshal(payload, &restored); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if len(restored) != len(original) {
		t.Fatalf("expected %d items, got %d", len(original), len(restored))
	}
	for i := range original {
		if restored[i].ProductID != original[i].ProductID ||
			restored[i].Title != original[i].Title ||
			restored[i].Quantity != original[i].Quantity ||
			!restored[i].Price.Equal(original[i].Price) {
			t.Fatalf("round-trip mismatch at %d: %+v vs %+v", i, original[i], restored[i])
		}
	}
}
