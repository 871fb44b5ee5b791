package order

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/partner"
	"github.com/resinworks/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ClientResolver resolves a free-text buyer name to a client record,
// creating a name-only record when no match exists.
type ClientResolver interface {
	ResolveOrCreate(ctx context.Context, ownerID uuid.UUID, buyerName string) (*partner.Client, error)
}

// SaleItemService handles sale item business operations. Writing a sale
// item with a buyer name transparently resolves or creates the matching
// client record and links it.
type SaleItemService struct {
	items     order.SaleItemRepository
	resolver  ClientResolver
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewSaleItemService creates a new SaleItemService
func NewSaleItemService(items order.SaleItemRepository, resolver ClientResolver, publisher shared.EventPublisher, logger *zap.Logger) *SaleItemService {
	return &SaleItemService{
		items:     items,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
	}
}

// Create creates a new sale item
func (s *SaleItemService) Create(ctx context.Context, ownerID uuid.UUID, req CreateSaleItemRequest) (*SaleItemResponse, error) {
	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		return nil, err
	}

	location, err := order.ParseSaleLocation(req.Location)
	if err != nil {
		return nil, err
	}

	item, err := order.NewSaleItem(ownerID, req.ItemName, req.Price, location, saleDate, req.BuyerName)
	if err != nil {
		return nil, err
	}

	s.resolveBuyer(ctx, ownerID, item)

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, item)

	resp := ToSaleItemResponse(item)
	return &resp, nil
}

// GetByID retrieves a sale item by ID
func (s *SaleItemService) GetByID(ctx context.Context, ownerID, itemID uuid.UUID) (*SaleItemResponse, error) {
	item, err := s.items.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}
	resp := ToSaleItemResponse(item)
	return &resp, nil
}

// List retrieves sale items with filtering and pagination
func (s *SaleItemService) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (*shared.Paginated[SaleItemResponse], error) {
	sharedFilter := filter.toSharedFilter()

	items, err := s.items.FindAllForOwner(ctx, ownerID, sharedFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.items.CountForOwner(ctx, ownerID, sharedFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SaleItemResponse, len(items))
	for i := range items {
		responses[i] = ToSaleItemResponse(&items[i])
	}

	paginated := shared.NewPaginated(responses, total, sharedFilter.Page, sharedFilter.PageSize)
	return &paginated, nil
}

// Update updates a sale item
func (s *SaleItemService) Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateSaleItemRequest) (*SaleItemResponse, error) {
	item, err := s.items.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		return nil, err
	}
	location, err := order.ParseSaleLocation(req.Location)
	if err != nil {
		return nil, err
	}

	buyerChanged := partner.NormalizeName(req.BuyerName) != partner.NormalizeName(item.BuyerName)

	if err := item.Update(req.ItemName, req.Price, location, saleDate, req.BuyerName, req.Delivered); err != nil {
		return nil, err
	}

	if buyerChanged {
		item.ClearClient()
	}
	// An unbound item is resolved again on every save, so a transient
	// resolver failure on an earlier write heals itself here.
	if buyerChanged || item.ClientID == nil {
		s.resolveBuyer(ctx, ownerID, item)
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, item)

	resp := ToSaleItemResponse(item)
	return &resp, nil
}

// Delete deletes a sale item
func (s *SaleItemService) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	item, err := s.items.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return err
	}

	if err := s.items.DeleteForOwner(ctx, ownerID, itemID); err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, order.NewSaleItemDeletedEvent(item)); err != nil {
		s.logger.Error("failed to publish sale item deleted event", zap.Error(err))
	}
	return nil
}

// resolveBuyer links the sale item to its client record. Resolution
// failures are logged, never surfaced: a sale must save even when the
// client record cannot be resolved.
func (s *SaleItemService) resolveBuyer(ctx context.Context, ownerID uuid.UUID, item *order.SaleItem) {
	if strings.TrimSpace(item.BuyerName) == "" {
		return
	}

	client, err := s.resolver.ResolveOrCreate(ctx, ownerID, item.BuyerName)
	if err != nil {
		s.logger.Warn("buyer could not be resolved to a client",
			zap.String("buyer_name", item.BuyerName),
			zap.Error(err),
		)
		return
	}
	item.BindClient(client.ID)
}

func (s *SaleItemService) publishEvents(ctx context.Context, item *order.SaleItem) {
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish sale item events", zap.Error(err))
	}
	item.ClearDomainEvents()
}
