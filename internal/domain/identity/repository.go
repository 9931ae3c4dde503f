package identity

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository persists customer accounts.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx any) CustomerRepository
}

// ResetTokenRepository persists password reset tokens.
type ResetTokenRepository interface {
	FindByToken(ctx context.Context, token string) (*PasswordResetToken, error)
	Save(ctx context.Context, token *PasswordResetToken) error
	// DeleteForCustomer removes outstanding tokens before issuing a new one.
	DeleteForCustomer(ctx context.Context, customerID uuid.UUID) error
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx any) ResetTokenRepository
}
