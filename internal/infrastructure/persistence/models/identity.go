package models

import (
	"github.com/resinworks/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	AggregateModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	DisplayName  string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// FromDomain populates the model from a domain user
func (m *UserModel) FromDomain(user *identity.User) {
	m.FromDomainAggregateRoot(user.BaseAggregateRoot)
	m.Email = user.Email
	m.PasswordHash = user.PasswordHash
	m.DisplayName = user.DisplayName
}
