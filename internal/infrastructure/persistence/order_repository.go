package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/domain/trade"
	"github.com/sunset/storefront/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds orders matching the filter with pagination
func (r *GormOrderRepository) FindAll(ctx context.Context, filter trade.OrderFilter) (shared.Paginated[trade.Order], error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[trade.Order]{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var orderModels []models.OrderModel
	err := query.
		Preload("Items").
		Order(fmt.Sprintf("%s %s", orderBy, orderDir)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orderModels).Error
	if err != nil {
		return shared.Paginated[trade.Order]{}, err
	}

	orders := make([]trade.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return shared.NewPaginated(orders, total, page, pageSize), nil
}

// ListRecent returns the latest orders across all customers
func (r *GormOrderRepository) ListRecent(ctx context.Context, limit int) ([]trade.Order, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var orderModels []models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	orders := make([]trade.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// CustomerStats aggregates order count and total spent, excluding
// cancelled orders
func (r *GormOrderRepository) CustomerStats(ctx context.Context, customerID uuid.UUID) (*trade.CustomerStats, error) {
	var row struct {
		OrderCount int
		TotalSpent decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS total_spent").
		Where("customer_id = ? AND status <> ?", customerID, trade.StatusCancelled).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &trade.CustomerStats{OrderCount: row.OrderCount, TotalSpent: row.TotalSpent}, nil
}

// Save inserts or updates an order with its items
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	var model models.OrderModel
	model.FromDomain(order)
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Save(&model).Error
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormOrderRepository) WithTx(tx any) trade.OrderRepository {
	if gormTx, ok := tx.(*gorm.DB); ok {
		return &GormOrderRepository{db: gormTx}
	}
	return r
}

// Ensure GormOrderRepository implements trade.OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
