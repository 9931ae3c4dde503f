package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/shared"
)

// ProductFilter narrows storefront product listings.
type ProductFilter struct {
	shared.Filter
	CategorySlug string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Featured     *bool
	ActiveOnly   bool
}

// PriceRange is the min and max price across active products.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// ProductRepository persists products.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDs returns the active products among the given ids, in no
	// particular order. Unknown ids are silently omitted.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindAll(ctx context.Context, filter ProductFilter) (shared.Paginated[Product], error)
	// PriceRange returns the price bounds across active products.
	PriceRange(ctx context.Context) (*PriceRange, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx any) ProductRepository
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
