package partner

import (
	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
)

// Event type constants for clients
const (
	EventTypeClientCreated = "ClientCreated"
	EventTypeClientUpdated = "ClientUpdated"
	EventTypeClientDeleted = "ClientDeleted"
	EventTypeClientsMerged = "ClientsMerged"
)

// ClientCreatedEvent is raised when a client is created
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientCreatedEvent creates a new client created event
func NewClientCreatedEvent(client *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, "Client", client.ID, client.OwnerID),
		ClientID:        client.ID,
		Name:            client.Name,
	}
}

// ClientUpdatedEvent is raised when a client is updated
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientUpdatedEvent creates a new client updated event
func NewClientUpdatedEvent(client *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, "Client", client.ID, client.OwnerID),
		ClientID:        client.ID,
		Name:            client.Name,
	}
}

// ClientDeletedEvent is raised when a client is deleted
type ClientDeletedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
}

// NewClientDeletedEvent creates a new client deleted event
func NewClientDeletedEvent(client *Client) *ClientDeletedEvent {
	return &ClientDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientDeleted, "Client", client.ID, client.OwnerID),
		ClientID:        client.ID,
	}
}

// ClientsMergedEvent is raised once per dedup pass that merged at least one
// duplicate group.
type ClientsMergedEvent struct {
	shared.BaseDomainEvent
	MergedCount  int `json:"merged_count"`
	DeletedCount int `json:"deleted_count"`
}

// NewClientsMergedEvent creates a new clients merged event
func NewClientsMergedEvent(ownerID uuid.UUID, mergedCount, deletedCount int) *ClientsMergedEvent {
	return &ClientsMergedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientsMerged, "Client", ownerID, ownerID),
		MergedCount:     mergedCount,
		DeletedCount:    deletedCount,
	}
}
