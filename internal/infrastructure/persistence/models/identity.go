package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/identity"
)

// CustomerModel maps customer accounts to the customers table
type CustomerModel struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(128)"`
	Name         string `gorm:"type:varchar(255)"`
	GoogleID     string `gorm:"type:varchar(128);index"`
	FacebookID   string `gorm:"type:varchar(128);index"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *identity.Customer {
	return &identity.Customer{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		GoogleID:     m.GoogleID,
		FacebookID:   m.FacebookID,
		IsAdmin:      m.IsAdmin,
	}
}

// FromDomain populates the model from a domain customer
func (m *CustomerModel) FromDomain(c *identity.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Email = c.Email
	m.PasswordHash = c.PasswordHash
	m.Name = c.Name
	m.GoogleID = c.GoogleID
	m.FacebookID = c.FacebookID
	m.IsAdmin = c.IsAdmin
}

// PasswordResetTokenModel maps reset tokens to the password_reset_tokens table
type PasswordResetTokenModel struct {
	BaseModel
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Token      string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	ExpiresAt  time.Time  `gorm:"not null"`
	UsedAt     *time.Time `gorm:""`
}

// TableName specifies the table name
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// ToDomain converts the model to a domain reset token
func (m *PasswordResetTokenModel) ToDomain() *identity.PasswordResetToken {
	return &identity.PasswordResetToken{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		Token:      m.Token,
		ExpiresAt:  m.ExpiresAt,
		UsedAt:     m.UsedAt,
	}
}

// FromDomain populates the model from a domain reset token
func (m *PasswordResetTokenModel) FromDomain(t *identity.PasswordResetToken) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.CustomerID = t.CustomerID
	m.Token = t.Token
	m.ExpiresAt = t.ExpiresAt
	m.UsedAt = t.UsedAt
}
