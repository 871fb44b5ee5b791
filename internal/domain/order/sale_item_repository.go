package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
)

// SaleItemRepository defines the persistence interface for sale items
type SaleItemRepository interface {
	// FindByIDForOwner retrieves a sale item by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*SaleItem, error)
	// FindAllForOwner retrieves sale items for an owner with filtering and pagination
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]SaleItem, error)
	// ListForOwner retrieves every sale item for an owner, unpaginated.
	// Used by the attribution and reporting engines.
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]SaleItem, error)
	// FindByClientID retrieves the sale items linked to a client
	FindByClientID(ctx context.Context, ownerID, clientID uuid.UUID) ([]SaleItem, error)
	// Save persists a sale item (create or update)
	Save(ctx context.Context, item *SaleItem) error
	// SaveBatch persists multiple sale items
	SaveBatch(ctx context.Context, items []*SaleItem) error
	// DeleteForOwner removes a sale item scoped to an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	// CountForOwner returns the number of sale items matching the filter
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
