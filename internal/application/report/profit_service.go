package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/report"
	"go.uber.org/zap"
)

// ProfitService serves the monthly profit and buyer ranking reports.
// Monthly profit is cached per owner and invalidated by the refresh
// handler whenever the underlying records change.
type ProfitService struct {
	items  order.SaleItemRepository
	lots   order.ResinLotRepository
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[uuid.UUID][]report.MonthlyEntry
}

// NewProfitService creates a new ProfitService
func NewProfitService(items order.SaleItemRepository, lots order.ResinLotRepository, logger *zap.Logger) *ProfitService {
	return &ProfitService{
		items:  items,
		lots:   lots,
		logger: logger,
		cache:  make(map[uuid.UUID][]report.MonthlyEntry),
	}
}

// MonthlyProfit returns the per-month profit entries for an owner
func (s *ProfitService) MonthlyProfit(ctx context.Context, ownerID uuid.UUID) ([]report.MonthlyEntry, error) {
	s.mu.RLock()
	cached, ok := s.cache[ownerID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	items, err := s.items.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	lots, err := s.lots.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entries := report.MonthlyProfit(items, lots)

	s.mu.Lock()
	s.cache[ownerID] = entries
	s.mu.Unlock()

	return entries, nil
}

// BuyerRanking returns the buyers of an owner ordered by total spent
func (s *ProfitService) BuyerRanking(ctx context.Context, ownerID uuid.UUID) ([]report.BuyerTotal, error) {
	items, err := s.items.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return report.BuyerRanking(items), nil
}

// Invalidate drops the cached monthly profit for an owner
func (s *ProfitService) Invalidate(ownerID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, ownerID)
	s.mu.Unlock()
}
