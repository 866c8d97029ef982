package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nikolayk812/cakeshop/internal/domain"
	"github.com/nikolayk812/cakeshop/internal/port"
)

const snapshotCurrency = "RM"

// Ledger owns the session's order-line items and their aggregate value.
// The in-memory list stays authoritative: persistence is best-effort, failures
// are logged and never propagated to the caller.
type Ledger struct {
	store  port.CartStore
	logger *zap.Logger
	nowFn  func() time.Time

	mu    sync.Mutex
	items []domain.OrderLineItem
}

// NewLedger loads the persisted cart. A malformed or unreadable blob degrades
// to an empty cart rather than failing construction.
func NewLedger(ctx context.Context, store port.CartStore, logger *zap.Logger) (*Ledger, error) {
	if store == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	items, err := store.LoadItems(ctx)
	if err != nil {
		logger.Warn("loading cart from store", zap.Error(err))
		items = nil
	}

	return &Ledger{
		store:  store,
		logger: logger,
		nowFn:  time.Now,
		items:  items,
	}, nil
}

// Add freezes the draft into a line item with a fresh id and timestamp,
// appends it and persists. It never rejects input; validation happens at
// message-formatting time.
func (l *Ledger) Add(ctx context.Context, draft domain.OrderDraft) domain.OrderLineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	item := domain.NewOrderLineItem(draft, "item_"+uuid.NewString(), l.nowFn())
	l.items = append(l.items, item)
	l.persist(ctx)

	return item
}

// Remove drops the item with the given id. Removing an absent id is a silent
// no-op.
func (l *Ledger) Remove(ctx context.Context, itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var kept []domain.OrderLineItem
	for _, item := range l.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}

	l.items = kept
	l.persist(ctx)
}

func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.persist(ctx)
}

// Items returns the line items in insertion order.
func (l *Ledger) Items() []domain.OrderLineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.OrderLineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.items)
}

// Total re-derives the cart value from the frozen display-price strings, not
// from the base components.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return domain.TotalAmount(l.items)
}

// Snapshot produces a transport-ready view of the cart with a fresh id.
func (l *Ledger) Snapshot() domain.CartSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshotLocked()
}

// Export writes the current snapshot through the given exporter, e.g. as a
// user-triggered file download, and returns its location.
func (l *Ledger) Export(ctx context.Context, exporter port.CartExporter) (string, error) {
	if exporter == nil {
		return "", fmt.Errorf("exporter is nil")
	}

	path, err := exporter.ExportSnapshot(ctx, l.Snapshot())
	if err != nil {
		return "", fmt.Errorf("exporter.ExportSnapshot: %w", err)
	}

	return path, nil
}

func (l *Ledger) snapshotLocked() domain.CartSnapshot {
	items := make([]domain.OrderLineItem, len(l.items))
	copy(items, l.items)

	return domain.CartSnapshot{
		CartID:      "cart_" + uuid.NewString(),
		Timestamp:   l.nowFn(),
		Items:       items,
		TotalItems:  len(items),
		TotalAmount: domain.TotalAmount(items),
		Currency:    snapshotCurrency,
	}
}

// persist writes both blobs best-effort; the caller must hold the mutex.
func (l *Ledger) persist(ctx context.Context) {
	if err := l.store.SaveItems(ctx, l.items); err != nil {
		l.logger.Warn("saving cart items", zap.Error(err))
	}

	if err := l.store.SaveSnapshot(ctx, l.snapshotLocked()); err != nil {
		l.logger.Warn("saving cart snapshot", zap.Error(err))
	}
}
