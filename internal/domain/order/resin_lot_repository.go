package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
)

// ResinLotRepository defines the persistence interface for resin lots
type ResinLotRepository interface {
	// FindByIDForOwner retrieves a lot by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*ResinLot, error)
	// FindAllForOwner retrieves lots for an owner with filtering and pagination
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]ResinLot, error)
	// ListForOwner retrieves every lot for an owner, unpaginated.
	// Used by the attribution and reporting engines.
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]ResinLot, error)
	// Save persists a lot (create or update)
	Save(ctx context.Context, lot *ResinLot) error
	// SaveBatch persists multiple lots
	SaveBatch(ctx context.Context, lots []*ResinLot) error
	// DeleteForOwner removes a lot scoped to an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	// CountForOwner returns the number of lots matching the filter
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
