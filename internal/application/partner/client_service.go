package partner

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/partner"
	"github.com/resinworks/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ClientService handles client business operations, including the
// resolution of free-text buyer names and the dedup merge pass.
type ClientService struct {
	clients   partner.ClientRepository
	items     order.SaleItemRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clients partner.ClientRepository, items order.SaleItemRepository, publisher shared.EventPublisher, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients:   clients,
		items:     items,
		publisher: publisher,
		logger:    logger,
	}
}

// Create creates a new client. Creating a client whose normalized name
// already exists is rejected; the existing record wins.
func (s *ClientService) Create(ctx context.Context, ownerID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	normalized := partner.NormalizeName(req.Name)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name is required")
	}

	if _, err := s.clients.FindByNormalizedName(ctx, ownerID, normalized); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A client with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	client, err := partner.NewClient(ownerID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, client)

	resp := ToClientResponse(client)
	return &resp, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[ClientResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	clients, err := s.clients.FindAllForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.clients.CountForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}

	paginated := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &paginated, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, ownerID, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	// Renaming onto an existing client is rejected, merging is explicit
	normalized := partner.NormalizeName(req.Name)
	if normalized != client.NormalizedName() {
		if existing, err := s.clients.FindByNormalizedName(ctx, ownerID, normalized); err == nil && existing.ID != clientID {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A client with this name already exists")
		} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	if err := client.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, client)

	resp := ToClientResponse(client)
	return &resp, nil
}

// Delete deletes a client and unlinks its sale items
func (s *ClientService) Delete(ctx context.Context, ownerID, clientID uuid.UUID) error {
	client, err := s.clients.FindByIDForOwner(ctx, ownerID, clientID)
	if err != nil {
		return err
	}

	linked, err := s.items.FindByClientID(ctx, ownerID, clientID)
	if err != nil {
		return err
	}
	for i := range linked {
		item := &linked[i]
		item.ClearClient()
		if err := s.items.Save(ctx, item); err != nil {
			s.logger.Error("failed to unlink sale item from deleted client",
				zap.String("sale_item_id", item.ID.String()),
				zap.Error(err),
			)
		}
	}

	if err := s.clients.DeleteForOwner(ctx, ownerID, clientID); err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, partner.NewClientDeletedEvent(client)); err != nil {
		s.logger.Error("failed to publish client deleted event", zap.Error(err))
	}
	return nil
}

// FindByBuyerName looks up the client matching a free-text buyer name
func (s *ClientService) FindByBuyerName(ctx context.Context, ownerID uuid.UUID, buyerName string) (*ClientResponse, error) {
	normalized := partner.NormalizeName(buyerName)
	if normalized == "" {
		return nil, shared.ErrNotFound
	}

	client, err := s.clients.FindByNormalizedName(ctx, ownerID, normalized)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// ResolveOrCreate returns the client matching the buyer name, creating a
// name-only record when none exists. The existing record always wins; its
// stored spelling and contact data are never touched.
func (s *ClientService) ResolveOrCreate(ctx context.Context, ownerID uuid.UUID, buyerName string) (*partner.Client, error) {
	normalized := partner.NormalizeName(buyerName)
	if normalized == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Buyer name is empty")
	}

	client, err := s.clients.FindByNormalizedName(ctx, ownerID, normalized)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	client, err = partner.NewClient(ownerID, strings.TrimSpace(buyerName), "", "", "")
	if err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, client)

	s.logger.Debug("client auto-created from buyer name",
		zap.String("owner_id", ownerID.String()),
		zap.String("name", client.Name),
	)
	return client, nil
}

// MergeDuplicates runs one dedup pass over the owner's clients: groups by
// normalized name, keeps the oldest record of each group, fills its empty
// contact fields from the duplicates, re-points linked sale items and
// deletes the absorbed records. Individual write failures are logged and
// skipped so one bad record cannot abort the pass.
func (s *ClientService) MergeDuplicates(ctx context.Context, ownerID uuid.UUID) (*MergeDuplicatesResponse, error) {
	clients, err := s.clients.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	refs := make([]*partner.Client, len(clients))
	for i := range clients {
		refs[i] = &clients[i]
	}

	plan := partner.PlanMerge(refs)
	if !plan.HasWork() {
		return &MergeDuplicatesResponse{}, nil
	}

	for _, survivor := range plan.ChangedSurvivors {
		if err := s.clients.Save(ctx, survivor); err != nil {
			s.logger.Error("failed to save merged client",
				zap.String("client_id", survivor.ID.String()),
				zap.Error(err),
			)
		}
	}

	repointed := 0
	for absorbedID, survivorID := range plan.Redirects {
		linked, err := s.items.FindByClientID(ctx, ownerID, absorbedID)
		if err != nil {
			s.logger.Error("failed to load sale items of absorbed client",
				zap.String("client_id", absorbedID.String()),
				zap.Error(err),
			)
			continue
		}
		for i := range linked {
			item := &linked[i]
			item.BindClient(survivorID)
			if err := s.items.Save(ctx, item); err != nil {
				s.logger.Error("failed to re-point sale item",
					zap.String("sale_item_id", item.ID.String()),
					zap.Error(err),
				)
				continue
			}
			repointed++
		}
	}

	deleted := 0
	for _, absorbedID := range plan.Deleted {
		if err := s.clients.DeleteForOwner(ctx, ownerID, absorbedID); err != nil {
			s.logger.Error("failed to delete absorbed client",
				zap.String("client_id", absorbedID.String()),
				zap.Error(err),
			)
			continue
		}
		deleted++
	}

	mergedGroups := 0
	for _, group := range plan.Groups {
		if len(group.Absorbed) > 0 {
			mergedGroups++
		}
	}

	if err := s.publisher.Publish(ctx, partner.NewClientsMergedEvent(ownerID, mergedGroups, deleted)); err != nil {
		s.logger.Error("failed to publish clients merged event", zap.Error(err))
	}

	s.logger.Info("duplicate clients merged",
		zap.String("owner_id", ownerID.String()),
		zap.Int("merged_groups", mergedGroups),
		zap.Int("deleted_clients", deleted),
		zap.Int("repointed_sale_items", repointed),
	)

	return &MergeDuplicatesResponse{
		MergedGroups:       mergedGroups,
		DeletedClients:     deleted,
		RepointedSaleItems: repointed,
	}, nil
}

func (s *ClientService) publishEvents(ctx context.Context, client *partner.Client) {
	events := client.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish client events", zap.Error(err))
	}
	client.ClearDomainEvents()
}
