package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/identity"
)

// RegisterInput contains input for account registration
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// LoginInput contains input for email and password login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OAuthLoginInput carries a profile obtained from an OAuth provider
type OAuthLoginInput struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
}

// LogoutInput contains input for logout
type LogoutInput struct {
	TokenID   string
	ExpiresAt time.Time
}

// RequestPasswordResetInput contains input for the forgot-password flow
type RequestPasswordResetInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput contains input for redeeming a reset token
type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// CustomerInfo is the account representation returned to clients
type CustomerInfo struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"is_admin"`
}

// AuthResult is returned by login and registration
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	TokenType   string       `json:"token_type"`
	Customer    CustomerInfo `json:"customer"`
}

func toCustomerInfo(c *identity.Customer) CustomerInfo {
	return CustomerInfo{
		ID:      c.ID,
		Email:   c.Email,
		Name:    c.Name,
		IsAdmin: c.IsAdmin,
	}
}
