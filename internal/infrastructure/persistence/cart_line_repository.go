package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/cart"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCartLineRepository implements cart.LineRepository using GORM
type GormCartLineRepository struct {
	db *gorm.DB
}

// NewGormCartLineRepository creates a new GormCartLineRepository
func NewGormCartLineRepository(db *gorm.DB) *GormCartLineRepository {
	return &GormCartLineRepository{db: db}
}

// lineDetailRow is the scan target for the lines-with-product join
type lineDetailRow struct {
	models.CartLineModel
	ProductName  string
	ProductPrice decimal.Decimal
	ProductImage string
	Stock        int
	Active       bool
}

// ListLines returns the owner's lines joined with product details,
// newest first. Lines whose product has been deactivated are excluded
// from the listing.
func (r *GormCartLineRepository) ListLines(ctx context.Context, owner cart.OwnerRef) ([]cart.LineDetail, error) {
	var rows []lineDetailRow
	err := r.db.WithContext(ctx).
		Table("cart_lines").
		Select(`cart_lines.*,
			products.name AS product_name,
			products.price AS product_price,
			products.image_url AS product_image,
			products.stock AS stock,
			products.active AS active`).
		Joins("JOIN products ON products.id = cart_lines.product_id AND products.active = ?", true).
		Where("cart_lines.owner_kind = ? AND cart_lines.owner_key = ?", owner.Kind, owner.Key).
		Order("cart_lines.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]cart.LineDetail, len(rows))
	for i, row := range rows {
		details[i] = cart.LineDetail{
			Line:         *row.CartLineModel.ToDomain(),
			ProductName:  row.ProductName,
			ProductPrice: row.ProductPrice,
			ProductImage: row.ProductImage,
			Stock:        row.Stock,
			Active:       row.Active,
		}
	}
	return details, nil
}

// CountItems returns the total unit count across all lines of an owner
func (r *GormCartLineRepository) CountItems(ctx context.Context, owner cart.OwnerRef) (int, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&models.CartLineModel{}).
		Select("SUM(quantity)").
		Where("owner_kind = ? AND owner_key = ?", owner.Kind, owner.Key).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return int(*total), nil
}

// CountDistinctProducts returns the number of lines an owner holds
func (r *GormCartLineRepository) CountDistinctProducts(ctx context.Context, owner cart.OwnerRef) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartLineModel{}).
		Where("owner_kind = ? AND owner_key = ?", owner.Kind, owner.Key).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// FindLine locates a line by its natural key
func (r *GormCartLineRepository) FindLine(ctx context.Context, owner cart.OwnerRef, productID uuid.UUID, size, color string) (*cart.Line, error) {
	var model models.CartLineModel
	err := r.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_key = ? AND product_id = ? AND size = ? AND color = ?",
			owner.Kind, owner.Key, productID, size, color).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindLineByID locates a line by id, scoped to the owner
func (r *GormCartLineRepository) FindLineByID(ctx context.Context, owner cart.OwnerRef, id uuid.UUID) (*cart.Line, error) {
	var model models.CartLineModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_kind = ? AND owner_key = ?", id, owner.Kind, owner.Key).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save inserts or updates a line
func (r *GormCartLineRepository) Save(ctx context.Context, line *cart.Line) error {
	var model models.CartLineModel
	model.FromDomain(line)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes a line scoped to the owner
func (r *GormCartLineRepository) Delete(ctx context.Context, owner cart.OwnerRef, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_kind = ? AND owner_key = ?", id, owner.Kind, owner.Key).
		Delete(&models.CartLineModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IncrementClamped folds requested units into an existing line in one
// statement, clamping against the per-item cap and the given stock
// snapshot. Returns the resulting quantity.
func (r *GormCartLineRepository) IncrementClamped(ctx context.Context, owner cart.OwnerRef, productID uuid.UUID, size, color string, requested, stock int) (int, error) {
	var quantity *int
	result := r.db.WithContext(ctx).Raw(`
		UPDATE cart_lines
		SET quantity = LEAST(quantity + ?, ?, ?), updated_at = NOW()
		WHERE owner_kind = ? AND owner_key = ? AND product_id = ? AND size = ? AND color = ?
		RETURNING quantity`,
		requested, cart.MaxQuantityPerItem, stock,
		owner.Kind, owner.Key, productID, size, color,
	).Scan(&quantity)
	if result.Error != nil {
		return 0, result.Error
	}
	if quantity == nil {
		return 0, shared.ErrNotFound
	}
	return *quantity, nil
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormCartLineRepository) WithTx(tx any) cart.LineRepository {
	if gormTx, ok := tx.(*gorm.DB); ok {
		return &GormCartLineRepository{db: gormTx}
	}
	return r
}

// Ensure GormCartLineRepository implements cart.LineRepository
var _ cart.LineRepository = (*GormCartLineRepository)(nil)
