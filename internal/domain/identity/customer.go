package identity

import (
	"strings"

	"github.com/sunset/storefront/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Customer is a registered storefront account. OAuth accounts carry a
// provider id and may have no password hash.
type Customer struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
	Name         string
	GoogleID     string
	FacebookID   string
	IsAdmin      bool
}

// NewCustomer registers a customer with a bcrypt-hashed password.
func NewCustomer(email, password, name string) (*Customer, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email is required")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Customer{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
	}, nil
}

// NewOAuthCustomer registers a customer from an OAuth profile. The
// provider is either "google" or "facebook".
func NewOAuthCustomer(email, name, provider, providerID string) (*Customer, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email is required")
	}
	c := &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		Name:       strings.TrimSpace(name),
	}
	switch provider {
	case "google":
		c.GoogleID = providerID
	case "facebook":
		c.FacebookID = providerID
	default:
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Unsupported OAuth provider")
	}
	return c, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (c *Customer) CheckPassword(password string) bool {
	if c.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces the stored hash. Used by password reset.
func (c *Customer) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	c.Touch()
	return nil
}

// LinkProvider attaches an OAuth provider id to an existing account.
func (c *Customer) LinkProvider(provider, providerID string) error {
	switch provider {
	case "google":
		c.GoogleID = providerID
	case "facebook":
		c.FacebookID = providerID
	default:
		return shared.NewDomainError("INVALID_PROVIDER", "Unsupported OAuth provider")
	}
	c.Touch()
	return nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
