package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/trade"
	"github.com/sunset/storefront/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements trade.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// ListByOrder returns the payments recorded against an order
func (r *GormPaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.Payment, error) {
	var paymentModels []models.PaymentModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("recorded_at ASC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}
	payments := make([]trade.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save inserts or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *trade.Payment) error {
	var model models.PaymentModel
	model.FromDomain(payment)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Ensure GormPaymentRepository implements trade.PaymentRepository
var _ trade.PaymentRepository = (*GormPaymentRepository)(nil)
