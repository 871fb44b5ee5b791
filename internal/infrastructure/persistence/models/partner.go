package models

import (
	"github.com/resinworks/backend/internal/domain/partner"
)

// ClientModel is the persistence model for clients
type ClientModel struct {
	OwnedAggregateModel
	Name    string `gorm:"type:varchar(255);not null;index"`
	Email   string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(50)"`
	Address string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain client
func (m *ClientModel) ToDomain() *partner.Client {
	client := &partner.Client{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Address: m.Address,
	}
	m.PopulateOwnedAggregateRoot(&client.OwnedAggregateRoot)
	return client
}

// FromDomain populates the model from a domain client
func (m *ClientModel) FromDomain(client *partner.Client) {
	m.FromDomainOwnedAggregateRoot(client.OwnedAggregateRoot)
	m.Name = client.Name
	m.Email = client.Email
	m.Phone = client.Phone
	m.Address = client.Address
}
