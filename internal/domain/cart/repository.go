package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDetail is a cart line joined with the catalog data the storefront
// needs to render it.
type LineDetail struct {
	Line
	ProductName  string
	ProductPrice decimal.Decimal
	ProductImage string
	Stock        int
	Active       bool
}

// LineRepository persists cart lines.
type LineRepository interface {
	// ListLines returns all lines for an owner with product details,
	// newest first.
	ListLines(ctx context.Context, owner OwnerRef) ([]LineDetail, error)
	// CountItems returns the total unit count across all lines of an owner.
	CountItems(ctx context.Context, owner OwnerRef) (int, error)
	// CountDistinctProducts returns the number of lines an owner holds.
	CountDistinctProducts(ctx context.Context, owner OwnerRef) (int, error)
	// FindLine locates a line by its natural key. Returns
	// shared.ErrNotFound when the owner has no such line.
	FindLine(ctx context.Context, owner OwnerRef, productID uuid.UUID, size, color string) (*Line, error)
	// FindLineByID locates a line by id, scoped to the owner. Returns
	// shared.ErrNotFound when the line does not exist or belongs to
	// another owner.
	FindLineByID(ctx context.Context, owner OwnerRef, id uuid.UUID) (*Line, error)
	// Save inserts or updates a line.
	Save(ctx context.Context, line *Line) error
	// Delete removes a line scoped to the owner. Returns
	// shared.ErrNotFound when nothing was removed.
	Delete(ctx context.Context, owner OwnerRef, id uuid.UUID) error
	// IncrementClamped folds requested units into an existing line in a
	// single statement, clamping against the per-item cap and stock in
	// the store. Returns the resulting quantity.
	IncrementClamped(ctx context.Context, owner OwnerRef, productID uuid.UUID, size, color string, requested, stock int) (int, error)
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx any) LineRepository
}
