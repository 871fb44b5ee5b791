package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SaleLocation represents the channel a figure was sold through
type SaleLocation string

const (
	SaleLocationWallapop SaleLocation = "wallapop"
	SaleLocationShop     SaleLocation = "shop"
	SaleLocationPersonal SaleLocation = "personal"
	SaleLocationFriends  SaleLocation = "friends"
)

// ParseSaleLocation parses a location string. Single-letter codes from
// legacy spreadsheet exports (W/T/P/A) are accepted alongside the full words.
func ParseSaleLocation(s string) (SaleLocation, error) {
	switch s {
	case string(SaleLocationWallapop), "W":
		return SaleLocationWallapop, nil
	case string(SaleLocationShop), "T":
		return SaleLocationShop, nil
	case string(SaleLocationPersonal), "P":
		return SaleLocationPersonal, nil
	case string(SaleLocationFriends), "A":
		return SaleLocationFriends, nil
	default:
		return "", shared.NewDomainError("INVALID_LOCATION", "Sale location must be 'wallapop', 'shop', 'personal' or 'friends'")
	}
}

// SaleItem represents a single printed figure sold to a buyer. Its price
// feeds the revenue attribution of every resin lot whose interval contains
// the sale date.
type SaleItem struct {
	shared.OwnedAggregateRoot
	ItemName  string
	Price     decimal.Decimal
	Location  SaleLocation
	SaleDate  time.Time
	BuyerName string
	ClientID  *uuid.UUID
	Delivered bool
}

// NewSaleItem creates a new sale item
func NewSaleItem(ownerID uuid.UUID, itemName string, price decimal.Decimal, location SaleLocation, saleDate time.Time, buyerName string) (*SaleItem, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if saleDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_SALE_DATE", "Sale date is required")
	}
	if _, err := ParseSaleLocation(string(location)); err != nil {
		return nil, err
	}

	item := &SaleItem{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		ItemName:           itemName,
		Price:              price,
		Location:           location,
		SaleDate:           DateOnly(saleDate),
		BuyerName:          strings.TrimSpace(buyerName),
	}

	item.AddDomainEvent(NewSaleItemChangedEvent(item, ChangeActionCreated))

	return item, nil
}

// Update replaces the user-editable fields of the sale item.
func (s *SaleItem) Update(itemName string, price decimal.Decimal, location SaleLocation, saleDate time.Time, buyerName string, delivered bool) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return shared.NewDomainError("INVALID_ITEM_NAME", "Item name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if saleDate.IsZero() {
		return shared.NewDomainError("INVALID_SALE_DATE", "Sale date is required")
	}
	if _, err := ParseSaleLocation(string(location)); err != nil {
		return err
	}

	s.ItemName = itemName
	s.Price = price
	s.Location = location
	s.SaleDate = DateOnly(saleDate)
	s.BuyerName = strings.TrimSpace(buyerName)
	s.Delivered = delivered
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleItemChangedEvent(s, ChangeActionUpdated))

	return nil
}

// BindClient links the sale item to a resolved client record. Binding does
// not raise a change event: it never moves the sale date or price, so no
// revenue recompute is needed.
func (s *SaleItem) BindClient(clientID uuid.UUID) {
	s.ClientID = &clientID
	s.UpdatedAt = time.Now()
}

// ClearClient removes the client link, keeping the free-text buyer name.
func (s *SaleItem) ClearClient() {
	s.ClientID = nil
	s.UpdatedAt = time.Now()
}

// MarkDelivered flags the item as handed over to the buyer.
func (s *SaleItem) MarkDelivered() {
	if s.Delivered {
		return
	}
	s.Delivered = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	s.AddDomainEvent(NewSaleItemChangedEvent(s, ChangeActionUpdated))
}
