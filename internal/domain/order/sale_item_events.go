package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EventTypeSaleItemChanged identifies sale item change events
const EventTypeSaleItemChanged = "SaleItemChanged"

// SaleItemChangedEvent is raised whenever a sale item is created, updated or
// deleted. Sale items are only written by user actions, so it carries no
// origin tag; every occurrence triggers a revenue recompute.
type SaleItemChangedEvent struct {
	shared.BaseDomainEvent
	SaleItemID uuid.UUID       `json:"sale_item_id"`
	Action     ChangeAction    `json:"action"`
	Price      decimal.Decimal `json:"price"`
	SaleDate   time.Time       `json:"sale_date"`
}

// NewSaleItemChangedEvent creates a new sale item changed event
func NewSaleItemChangedEvent(item *SaleItem, action ChangeAction) *SaleItemChangedEvent {
	return &SaleItemChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleItemChanged, "SaleItem", item.ID, item.OwnerID),
		SaleItemID:      item.ID,
		Action:          action,
		Price:           item.Price,
		SaleDate:        item.SaleDate,
	}
}

// NewSaleItemDeletedEvent creates the change event for a sale item deletion
func NewSaleItemDeletedEvent(item *SaleItem) *SaleItemChangedEvent {
	return &SaleItemChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleItemChanged, "SaleItem", item.ID, item.OwnerID),
		SaleItemID:      item.ID,
		Action:          ChangeActionDeleted,
		Price:           item.Price,
		SaleDate:        item.SaleDate,
	}
}
