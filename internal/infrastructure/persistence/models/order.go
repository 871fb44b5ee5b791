package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// ResinLotModel is the persistence model for resin lots
type ResinLotModel struct {
	OwnedAggregateModel
	PurchaseDate time.Time       `gorm:"not null;index"`
	EndDate      *time.Time      `gorm:"index"`
	Quantity     decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	GrossRevenue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (ResinLotModel) TableName() string {
	return "resin_lots"
}

// ToDomain converts the model to a domain resin lot
func (m *ResinLotModel) ToDomain() *order.ResinLot {
	lot := &order.ResinLot{
		PurchaseDate: m.PurchaseDate,
		EndDate:      m.EndDate,
		Quantity:     m.Quantity,
		GrossRevenue: m.GrossRevenue,
		Cost:         m.Cost,
		Status:       order.ResinLotStatus(m.Status),
	}
	m.PopulateOwnedAggregateRoot(&lot.OwnedAggregateRoot)
	return lot
}

// FromDomain populates the model from a domain resin lot
func (m *ResinLotModel) FromDomain(lot *order.ResinLot) {
	m.FromDomainOwnedAggregateRoot(lot.OwnedAggregateRoot)
	m.PurchaseDate = lot.PurchaseDate
	m.EndDate = lot.EndDate
	m.Quantity = lot.Quantity
	m.GrossRevenue = lot.GrossRevenue
	m.Cost = lot.Cost
	m.Status = string(lot.Status)
}

// SaleItemModel is the persistence model for sale items
type SaleItemModel struct {
	OwnedAggregateModel
	ItemName  string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Location  string          `gorm:"type:varchar(20);not null"`
	SaleDate  time.Time       `gorm:"not null;index"`
	BuyerName string          `gorm:"type:varchar(255)"`
	ClientID  *uuid.UUID      `gorm:"type:uuid;index"`
	Delivered bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToDomain converts the model to a domain sale item
func (m *SaleItemModel) ToDomain() *order.SaleItem {
	item := &order.SaleItem{
		ItemName:  m.ItemName,
		Price:     m.Price,
		Location:  order.SaleLocation(m.Location),
		SaleDate:  m.SaleDate,
		BuyerName: m.BuyerName,
		ClientID:  m.ClientID,
		Delivered: m.Delivered,
	}
	m.PopulateOwnedAggregateRoot(&item.OwnedAggregateRoot)
	return item
}

// FromDomain populates the model from a domain sale item
func (m *SaleItemModel) FromDomain(item *order.SaleItem) {
	m.FromDomainOwnedAggregateRoot(item.OwnedAggregateRoot)
	m.ItemName = item.ItemName
	m.Price = item.Price
	m.Location = string(item.Location)
	m.SaleDate = item.SaleDate
	m.BuyerName = item.BuyerName
	m.ClientID = item.ClientID
	m.Delivered = item.Delivered
}
