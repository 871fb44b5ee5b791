package report

import (
	"context"

	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
)

// ProfitRefreshHandler invalidates the cached monthly profit of an owner
// whenever sale items or resin lots change. Recompute-origin lot writes
// also land here on purpose: a recalculated gross revenue changes the
// profit of delivered lots.
type ProfitRefreshHandler struct {
	profit *ProfitService
}

// NewProfitRefreshHandler creates a new ProfitRefreshHandler
func NewProfitRefreshHandler(profit *ProfitService) *ProfitRefreshHandler {
	return &ProfitRefreshHandler{profit: profit}
}

// Handle processes a change event
func (h *ProfitRefreshHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.profit.Invalidate(event.OwnerID())
	return nil
}

// EventTypes returns the event types this handler is interested in
func (h *ProfitRefreshHandler) EventTypes() []string {
	return []string{
		order.EventTypeSaleItemChanged,
		order.EventTypeResinLotChanged,
		order.EventTypeResinLotsRecalculated,
		order.EventTypeRecordsImported,
	}
}

var _ shared.EventHandler = (*ProfitRefreshHandler)(nil)
