package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/identity"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormResetTokenRepository implements identity.ResetTokenRepository using GORM
type GormResetTokenRepository struct {
	db *gorm.DB
}

// NewGormResetTokenRepository creates a new GormResetTokenRepository
func NewGormResetTokenRepository(db *gorm.DB) *GormResetTokenRepository {
	return &GormResetTokenRepository{db: db}
}

// FindByToken finds a reset token by its opaque value
func (r *GormResetTokenRepository) FindByToken(ctx context.Context, token string) (*identity.PasswordResetToken, error) {
	var model models.PasswordResetTokenModel
	if err := r.db.WithContext(ctx).First(&model, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts or updates a reset token
func (r *GormResetTokenRepository) Save(ctx context.Context, token *identity.PasswordResetToken) error {
	var model models.PasswordResetTokenModel
	model.FromDomain(token)
	return r.db.WithContext(ctx).Save(&model).Error
}

// DeleteForCustomer removes all outstanding tokens for a customer
func (r *GormResetTokenRepository) DeleteForCustomer(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.PasswordResetTokenModel{}, "customer_id = ?", customerID).Error
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormResetTokenRepository) WithTx(tx any) identity.ResetTokenRepository {
	if gormTx, ok := tx.(*gorm.DB); ok {
		return &GormResetTokenRepository{db: gormTx}
	}
	return r
}

// Ensure GormResetTokenRepository implements identity.ResetTokenRepository
var _ identity.ResetTokenRepository = (*GormResetTokenRepository)(nil)
