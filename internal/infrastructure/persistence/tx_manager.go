package persistence

import (
	"context"

	"github.com/sunset/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTxManager runs functions inside a GORM transaction. The handle
// passed to fn is a *gorm.DB suitable for the repositories' WithTx.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// Transaction executes fn inside a transaction, rolling back on error
func (m *GormTxManager) Transaction(ctx context.Context, fn func(tx any) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}

// Ensure GormTxManager implements shared.TxManager
var _ shared.TxManager = (*GormTxManager)(nil)
