package order

import (
	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
)

// EventTypeRecordsImported identifies bulk import events
const EventTypeRecordsImported = "RecordsImported"

// RecordsImportedEvent is raised once after a workbook import, whatever the
// recalculation pass did. Imported rows carry no per-record change events,
// so read models listen for this one to pick up the new data.
type RecordsImportedEvent struct {
	shared.BaseDomainEvent
	LotCount      int `json:"lot_count"`
	SaleItemCount int `json:"sale_item_count"`
	ClientCount   int `json:"client_count"`
}

// NewRecordsImportedEvent creates a new bulk import event
func NewRecordsImportedEvent(ownerID uuid.UUID, lotCount, saleItemCount, clientCount int) *RecordsImportedEvent {
	return &RecordsImportedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRecordsImported, "Workbook", ownerID, ownerID),
		LotCount:        lotCount,
		SaleItemCount:   saleItemCount,
		ClientCount:     clientCount,
	}
}
