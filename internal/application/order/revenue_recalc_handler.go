package order

import (
	"context"

	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RevenueRecalcHandler triggers an attribution pass whenever sale items
// change, or when a user edits a lot's interval. Lot change events carrying
// the recompute origin are ignored: those are this pipeline's own writes,
// reacting to them would loop forever.
type RevenueRecalcHandler struct {
	recalc *RevenueRecalcService
	logger *zap.Logger
}

// NewRevenueRecalcHandler creates a new RevenueRecalcHandler
func NewRevenueRecalcHandler(recalc *RevenueRecalcService, logger *zap.Logger) *RevenueRecalcHandler {
	return &RevenueRecalcHandler{
		recalc: recalc,
		logger: logger,
	}
}

// Handle processes a change event
func (h *RevenueRecalcHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if lotChanged, ok := event.(*order.ResinLotChangedEvent); ok {
		if lotChanged.Origin == shared.OriginRecompute {
			return nil
		}
	}

	_, err := h.recalc.RecalculateOwner(ctx, event.OwnerID())
	return err
}

// EventTypes returns the event types this handler is interested in
func (h *RevenueRecalcHandler) EventTypes() []string {
	return []string{
		order.EventTypeSaleItemChanged,
		order.EventTypeResinLotChanged,
	}
}

var _ shared.EventHandler = (*RevenueRecalcHandler)(nil)
