package identity

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/shared"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// PasswordResetToken is a single-use token mailed to a customer who
// forgot their password.
type PasswordResetToken struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	Token      string
	ExpiresAt  time.Time
	UsedAt     *time.Time
}

// NewPasswordResetToken issues a token valid for ResetTokenTTL.
func NewPasswordResetToken(customerID uuid.UUID) (*PasswordResetToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return &PasswordResetToken{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Token:      hex.EncodeToString(buf),
		ExpiresAt:  time.Now().Add(ResetTokenTTL),
	}, nil
}

// Consume marks the token used. It fails when the token is expired or
// was already consumed.
func (t *PasswordResetToken) Consume() error {
	if t.UsedAt != nil {
		return shared.NewDomainError("TOKEN_USED", "Reset token was already used")
	}
	if time.Now().After(t.ExpiresAt) {
		return shared.NewDomainError("TOKEN_EXPIRED", "Reset token has expired")
	}
	now := time.Now()
	t.UsedAt = &now
	t.Touch()
	return nil
}
