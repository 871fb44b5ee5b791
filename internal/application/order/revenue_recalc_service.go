package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RevenueRecalcService recomputes the gross revenue of every resin lot of
// an owner from the current sale items. Only lots whose stored value
// differs from the computed one are written back, and all resulting change
// events carry the recompute origin so the pipeline does not feed itself.
type RevenueRecalcService struct {
	lots      order.ResinLotRepository
	items     order.SaleItemRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewRevenueRecalcService creates a new RevenueRecalcService
func NewRevenueRecalcService(lots order.ResinLotRepository, items order.SaleItemRepository, publisher shared.EventPublisher, logger *zap.Logger) *RevenueRecalcService {
	return &RevenueRecalcService{
		lots:      lots,
		items:     items,
		publisher: publisher,
		logger:    logger,
	}
}

// RecalculateOwner runs one attribution pass for an owner and returns the
// number of lots written back. Changed lots are written concurrently; a
// failed write is logged and skipped so one bad record cannot block the
// rest of the pass.
func (s *RevenueRecalcService) RecalculateOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	lots, err := s.lots.ListForOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if len(lots) == 0 {
		return 0, nil
	}

	items, err := s.items.ListForOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	var changed []*order.ResinLot
	for i := range lots {
		lot := &lots[i]
		computed := order.AttributeRevenue(lot, items)
		if computed.Equal(lot.GrossRevenue) {
			continue
		}
		lot.ApplyAttribution(computed)
		changed = append(changed, lot)
	}

	if len(changed) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	results := make([]error, len(changed))
	for i, lot := range changed {
		wg.Add(1)
		go func(i int, lot *order.ResinLot) {
			defer wg.Done()
			results[i] = s.lots.Save(ctx, lot)
		}(i, lot)
	}
	wg.Wait()

	written := 0
	var events []shared.DomainEvent
	for i, lot := range changed {
		if results[i] != nil {
			s.logger.Error("failed to write recomputed lot revenue",
				zap.String("lot_id", lot.ID.String()),
				zap.Error(results[i]),
			)
			continue
		}
		written++
		events = append(events, lot.GetDomainEvents()...)
		lot.ClearDomainEvents()
	}

	if written == 0 {
		return 0, nil
	}

	// One batched notification per pass, not one per written lot.
	events = append(events, order.NewResinLotsRecalculatedEvent(ownerID, written))
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish recalculation events", zap.Error(err))
	}

	s.logger.Info("revenue recalculated",
		zap.String("owner_id", ownerID.String()),
		zap.Int("lots_updated", written),
	)

	return written, nil
}
