package port

import (
	"context"

	"github.com/nikolayk812/cakeshop/internal/domain"
)

// CartStore persists the cart as a single key-value blob. Implementations are
// best-effort collaborators: the ledger keeps its in-memory state
// authoritative whatever they return.
type CartStore interface {
	LoadItems(ctx context.Context) ([]domain.OrderLineItem, error)
	SaveItems(ctx context.Context, items []domain.OrderLineItem) error
	SaveSnapshot(ctx context.Context, snapshot domain.CartSnapshot) error
}

// CartExporter writes a user-facing export of the cart and returns its
// location.
type CartExporter interface {
	ExportSnapshot(ctx context.Context, snapshot domain.CartSnapshot) (string, error)
}
