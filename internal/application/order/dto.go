package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// CreateResinLotRequest is the request to create a resin lot
type CreateResinLotRequest struct {
	PurchaseDate string           `json:"purchase_date" binding:"required"`
	EndDate      *string          `json:"end_date"`
	Quantity     decimal.Decimal  `json:"quantity" binding:"required"`
	Cost         decimal.Decimal  `json:"cost"`
	GrossRevenue *decimal.Decimal `json:"gross_revenue"`
	Status       string           `json:"status"`
}

// UpdateResinLotRequest is the request to update a resin lot
type UpdateResinLotRequest struct {
	PurchaseDate string          `json:"purchase_date" binding:"required"`
	EndDate      *string         `json:"end_date"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Cost         decimal.Decimal `json:"cost"`
	Status       string          `json:"status" binding:"required"`
}

// ResinLotResponse is the API representation of a resin lot
type ResinLotResponse struct {
	ID           uuid.UUID        `json:"id"`
	PurchaseDate string           `json:"purchase_date"`
	EndDate      *string          `json:"end_date,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	GrossRevenue decimal.Decimal  `json:"gross_revenue"`
	Cost         decimal.Decimal  `json:"cost"`
	NetProfit    *decimal.Decimal `json:"net_profit,omitempty"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ToResinLotResponse converts a domain resin lot to its API representation
func ToResinLotResponse(lot *order.ResinLot) ResinLotResponse {
	resp := ResinLotResponse{
		ID:           lot.ID,
		PurchaseDate: lot.PurchaseDate.Format(DateLayout),
		Quantity:     lot.Quantity,
		GrossRevenue: lot.GrossRevenue,
		Cost:         lot.Cost,
		Status:       string(lot.Status),
		CreatedAt:    lot.CreatedAt,
		UpdatedAt:    lot.UpdatedAt,
	}
	if lot.EndDate != nil {
		end := lot.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	if profit, ok := lot.NetProfit(); ok {
		resp.NetProfit = &profit
	}
	return resp
}

// CreateSaleItemRequest is the request to create a sale item
type CreateSaleItemRequest struct {
	ItemName  string          `json:"item_name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location" binding:"required"`
	SaleDate  string          `json:"sale_date" binding:"required"`
	BuyerName string          `json:"buyer_name"`
}

// UpdateSaleItemRequest is the request to update a sale item
type UpdateSaleItemRequest struct {
	ItemName  string          `json:"item_name" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location" binding:"required"`
	SaleDate  string          `json:"sale_date" binding:"required"`
	BuyerName string          `json:"buyer_name"`
	Delivered bool            `json:"delivered"`
}

// SaleItemResponse is the API representation of a sale item
type SaleItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ItemName  string          `json:"item_name"`
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location"`
	SaleDate  string          `json:"sale_date"`
	BuyerName string          `json:"buyer_name,omitempty"`
	ClientID  *uuid.UUID      `json:"client_id,omitempty"`
	Delivered bool            `json:"delivered"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToSaleItemResponse converts a domain sale item to its API representation
func ToSaleItemResponse(item *order.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:        item.ID,
		ItemName:  item.ItemName,
		Price:     item.Price,
		Location:  string(item.Location),
		SaleDate:  item.SaleDate.Format(DateLayout),
		BuyerName: item.BuyerName,
		ClientID:  item.ClientID,
		Delivered: item.Delivered,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ListFilter holds the common list query options
type ListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// toSharedFilter converts the list filter applying defaults
func (f ListFilter) toSharedFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 && f.PageSize <= 100 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
		filter.OrderDir = f.OrderDir
	} else {
		filter.OrderBy = ""
	}
	filter.Search = f.Search
	if f.Filters != nil {
		filter.Filters = f.Filters
	}
	return filter
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
