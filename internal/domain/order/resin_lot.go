package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ResinLotStatus represents the delivery status of a resin purchase lot
type ResinLotStatus string

const (
	ResinLotStatusPending   ResinLotStatus = "pending"
	ResinLotStatusDelivered ResinLotStatus = "delivered"
	ResinLotStatusCancelled ResinLotStatus = "cancelled"
)

// ParseResinLotStatus parses a status string. Single-letter codes from
// legacy spreadsheet exports (P/E/C) are accepted alongside the full words.
func ParseResinLotStatus(s string) (ResinLotStatus, error) {
	switch s {
	case string(ResinLotStatusPending), "P":
		return ResinLotStatusPending, nil
	case string(ResinLotStatusDelivered), "E":
		return ResinLotStatusDelivered, nil
	case string(ResinLotStatusCancelled), "C":
		return ResinLotStatusCancelled, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", "Lot status must be 'pending', 'delivered' or 'cancelled'")
	}
}

// ResinLot represents a purchased batch of raw resin. It accumulates gross
// revenue from sale items dated inside its [PurchaseDate, EndDate] interval;
// a nil EndDate means the lot is still open and keeps accumulating.
type ResinLot struct {
	shared.OwnedAggregateRoot
	PurchaseDate time.Time
	EndDate      *time.Time
	Quantity     decimal.Decimal // kilograms
	GrossRevenue decimal.Decimal // derived by the attribution engine
	Cost         decimal.Decimal
	Status       ResinLotStatus
}

// NewResinLot creates a new resin lot. The grossRevenue argument is only an
// initial estimate; the attribution engine overwrites it on the next pass.
func NewResinLot(ownerID uuid.UUID, purchaseDate time.Time, endDate *time.Time, quantity, cost, grossRevenue decimal.Decimal, status ResinLotStatus) (*ResinLot, error) {
	if purchaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PURCHASE_DATE", "Purchase date is required")
	}
	if endDate != nil && DateOnly(*endDate).Before(DateOnly(purchaseDate)) {
		return nil, shared.NewDomainError("INVALID_END_DATE", "End date cannot be before purchase date")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	if grossRevenue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_GROSS_REVENUE", "Gross revenue cannot be negative")
	}
	if status == "" {
		status = ResinLotStatusPending
	}
	if _, err := ParseResinLotStatus(string(status)); err != nil {
		return nil, err
	}

	lot := &ResinLot{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		PurchaseDate:       DateOnly(purchaseDate),
		Quantity:           quantity,
		GrossRevenue:       grossRevenue,
		Cost:               cost,
		Status:             status,
	}
	if endDate != nil {
		d := DateOnly(*endDate)
		lot.EndDate = &d
	}

	lot.AddDomainEvent(NewResinLotChangedEvent(lot, ChangeActionCreated, shared.OriginUser))

	return lot, nil
}

// Update replaces the user-editable fields of the lot.
func (l *ResinLot) Update(purchaseDate time.Time, endDate *time.Time, quantity, cost decimal.Decimal, status ResinLotStatus) error {
	if purchaseDate.IsZero() {
		return shared.NewDomainError("INVALID_PURCHASE_DATE", "Purchase date is required")
	}
	if endDate != nil && DateOnly(*endDate).Before(DateOnly(purchaseDate)) {
		return shared.NewDomainError("INVALID_END_DATE", "End date cannot be before purchase date")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	if _, err := ParseResinLotStatus(string(status)); err != nil {
		return err
	}

	l.PurchaseDate = DateOnly(purchaseDate)
	if endDate != nil {
		d := DateOnly(*endDate)
		l.EndDate = &d
	} else {
		l.EndDate = nil
	}
	l.Quantity = quantity
	l.Cost = cost
	l.Status = status
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	l.AddDomainEvent(NewResinLotChangedEvent(l, ChangeActionUpdated, shared.OriginUser))

	return nil
}

// ApplyAttribution sets the engine-computed gross revenue. The resulting
// change event is tagged with the recompute origin so the recalculation
// controller does not react to its own writes.
func (l *ResinLot) ApplyAttribution(grossRevenue decimal.Decimal) {
	l.GrossRevenue = grossRevenue
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	l.AddDomainEvent(NewResinLotChangedEvent(l, ChangeActionUpdated, shared.OriginRecompute))
}

// IsOpen reports whether the lot is still accumulating revenue
func (l *ResinLot) IsOpen() bool {
	return l.EndDate == nil
}

// IsDelivered reports whether the lot has been delivered
func (l *ResinLot) IsDelivered() bool {
	return l.Status == ResinLotStatusDelivered
}

// NetProfit returns GrossRevenue minus Cost. It is only meaningful for
// delivered lots; ok is false otherwise.
func (l *ResinLot) NetProfit() (decimal.Decimal, bool) {
	if !l.IsDelivered() {
		return decimal.Zero, false
	}
	return l.GrossRevenue.Sub(l.Cost), true
}
