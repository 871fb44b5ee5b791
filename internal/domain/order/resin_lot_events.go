package order

import (
	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ChangeAction describes what happened to an aggregate
type ChangeAction string

const (
	ChangeActionCreated ChangeAction = "created"
	ChangeActionUpdated ChangeAction = "updated"
	ChangeActionDeleted ChangeAction = "deleted"
)

// Event type constants for resin lots
const (
	EventTypeResinLotChanged       = "ResinLotChanged"
	EventTypeResinLotsRecalculated = "ResinLotsRecalculated"
)

// ResinLotChangedEvent is raised whenever a resin lot is created, updated
// or deleted. Origin distinguishes user edits from attribution write-backs.
type ResinLotChangedEvent struct {
	shared.BaseDomainEvent
	LotID        uuid.UUID           `json:"lot_id"`
	Action       ChangeAction        `json:"action"`
	Origin       shared.ChangeOrigin `json:"origin"`
	GrossRevenue decimal.Decimal     `json:"gross_revenue"`
	Status       ResinLotStatus      `json:"status"`
}

// NewResinLotChangedEvent creates a new resin lot changed event
func NewResinLotChangedEvent(lot *ResinLot, action ChangeAction, origin shared.ChangeOrigin) *ResinLotChangedEvent {
	return &ResinLotChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeResinLotChanged, "ResinLot", lot.ID, lot.OwnerID),
		LotID:           lot.ID,
		Action:          action,
		Origin:          origin,
		GrossRevenue:    lot.GrossRevenue,
		Status:          lot.Status,
	}
}

// NewResinLotDeletedEvent creates the change event for a lot deletion
func NewResinLotDeletedEvent(lot *ResinLot) *ResinLotChangedEvent {
	return &ResinLotChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeResinLotChanged, "ResinLot", lot.ID, lot.OwnerID),
		LotID:           lot.ID,
		Action:          ChangeActionDeleted,
		Origin:          shared.OriginUser,
		GrossRevenue:    lot.GrossRevenue,
		Status:          lot.Status,
	}
}

// ResinLotsRecalculatedEvent is raised once per recompute pass that changed
// at least one lot. It batches what would otherwise be one notification per
// written lot.
type ResinLotsRecalculatedEvent struct {
	shared.BaseDomainEvent
	UpdatedCount int `json:"updated_count"`
}

// NewResinLotsRecalculatedEvent creates a new batched recalculation event
func NewResinLotsRecalculatedEvent(ownerID uuid.UUID, updatedCount int) *ResinLotsRecalculatedEvent {
	return &ResinLotsRecalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeResinLotsRecalculated, "ResinLot", ownerID, ownerID),
		UpdatedCount:    updatedCount,
	}
}
