package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
)

// ClientRepository defines the persistence interface for clients
type ClientRepository interface {
	// FindByIDForOwner retrieves a client by ID scoped to an owner
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Client, error)
	// FindByNormalizedName retrieves the client whose trimmed lowercased
	// name equals the given key, or shared.ErrNotFound
	FindByNormalizedName(ctx context.Context, ownerID uuid.UUID, normalized string) (*Client, error)
	// FindAllForOwner retrieves clients for an owner with filtering and pagination
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Client, error)
	// ListForOwner retrieves every client for an owner, unpaginated.
	// Used by the dedup pass.
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]Client, error)
	// Save persists a client (create or update)
	Save(ctx context.Context, client *Client) error
	// DeleteForOwner removes a client scoped to an owner
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	// CountForOwner returns the number of clients matching the filter
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}
