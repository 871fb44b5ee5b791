package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ResinLotService handles resin lot business operations
type ResinLotService struct {
	lots      order.ResinLotRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewResinLotService creates a new ResinLotService
func NewResinLotService(lots order.ResinLotRepository, publisher shared.EventPublisher, logger *zap.Logger) *ResinLotService {
	return &ResinLotService{
		lots:      lots,
		publisher: publisher,
		logger:    logger,
	}
}

// Create creates a new resin lot
func (s *ResinLotService) Create(ctx context.Context, ownerID uuid.UUID, req CreateResinLotRequest) (*ResinLotResponse, error) {
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	grossRevenue := decimal.Zero
	if req.GrossRevenue != nil {
		grossRevenue = *req.GrossRevenue
	}

	lot, err := order.NewResinLot(ownerID, purchaseDate, endDate, req.Quantity, req.Cost, grossRevenue, order.ResinLotStatus(req.Status))
	if err != nil {
		return nil, err
	}

	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, &lot.OwnedAggregateRoot)

	resp := ToResinLotResponse(lot)
	return &resp, nil
}

// GetByID retrieves a resin lot by ID
func (s *ResinLotService) GetByID(ctx context.Context, ownerID, lotID uuid.UUID) (*ResinLotResponse, error) {
	lot, err := s.lots.FindByIDForOwner(ctx, ownerID, lotID)
	if err != nil {
		return nil, err
	}
	resp := ToResinLotResponse(lot)
	return &resp, nil
}

// List retrieves resin lots with filtering and pagination
func (s *ResinLotService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (*shared.Paginated[ResinLotResponse], error) {
	sharedFilter := filter.toSharedFilter()

	lots, err := s.lots.FindAllForOwner(ctx, ownerID, sharedFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.lots.CountForOwner(ctx, ownerID, sharedFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ResinLotResponse, len(lots))
	for i := range lots {
		responses[i] = ToResinLotResponse(&lots[i])
	}

	paginated := shared.NewPaginated(responses, total, sharedFilter.Page, sharedFilter.PageSize)
	return &paginated, nil
}

// Update updates a resin lot
func (s *ResinLotService) Update(ctx context.Context, ownerID, lotID uuid.UUID, req UpdateResinLotRequest) (*ResinLotResponse, error) {
	lot, err := s.lots.FindByIDForOwner(ctx, ownerID, lotID)
	if err != nil {
		return nil, err
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := lot.Update(purchaseDate, endDate, req.Quantity, req.Cost, order.ResinLotStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, &lot.OwnedAggregateRoot)

	resp := ToResinLotResponse(lot)
	return &resp, nil
}

// Delete deletes a resin lot
func (s *ResinLotService) Delete(ctx context.Context, ownerID, lotID uuid.UUID) error {
	lot, err := s.lots.FindByIDForOwner(ctx, ownerID, lotID)
	if err != nil {
		return err
	}

	if err := s.lots.DeleteForOwner(ctx, ownerID, lotID); err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, order.NewResinLotDeletedEvent(lot)); err != nil {
		s.logger.Error("failed to publish lot deleted event", zap.Error(err))
	}
	return nil
}

func (s *ResinLotService) publishEvents(ctx context.Context, agg *shared.OwnedAggregateRoot) {
	events := agg.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish resin lot events", zap.Error(err))
	}
	agg.ClearDomainEvents()
}
