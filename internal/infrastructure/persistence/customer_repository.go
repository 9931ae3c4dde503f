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

// GormCustomerRepository implements identity.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a customer by email
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*identity.Customer, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", identity.NormalizeEmail(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProvider finds a customer by OAuth provider id
func (r *GormCustomerRepository) FindByProvider(ctx context.Context, provider, providerID string) (*identity.Customer, error) {
	var column string
	switch provider {
	case "google":
		column = "google_id"
	case "facebook":
		column = "facebook_id"
	default:
		return nil, shared.NewDomainError("INVALID_PROVIDER", "Unsupported OAuth provider")
	}

	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where(column+" = ?", providerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *identity.Customer) error {
	var model models.CustomerModel
	model.FromDomain(customer)
	return r.db.WithContext(ctx).Save(&model).Error
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormCustomerRepository) WithTx(tx any) identity.CustomerRepository {
	if gormTx, ok := tx.(*gorm.DB); ok {
		return &GormCustomerRepository{db: gormTx}
	}
	return r
}

// Ensure GormCustomerRepository implements identity.CustomerRepository
var _ identity.CustomerRepository = (*GormCustomerRepository)(nil)
