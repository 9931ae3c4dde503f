package cart

import (
	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/shared"
)

const (
	// MaxQuantityPerItem caps how many units of a single line a cart may hold.
	MaxQuantityPerItem = 15
	// MaxDistinctItems caps how many different lines a cart may hold.
	MaxDistinctItems = 50
)

// Line is a single entry in a cart. A line is unique per owner, product
// and variant (size, color). Size and color are empty strings when the
// product has no variants.
type Line struct {
	shared.BaseEntity
	Owner     OwnerRef
	ProductID uuid.UUID
	Quantity  int
	Size      string
	Color     string
}

// NewLine creates a cart line for a first-time add. The requested
// quantity is clamped against available stock; stock of zero yields a
// zero-quantity line rather than an error.
func NewLine(owner OwnerRef, productID uuid.UUID, requested, stock int) (*Line, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if requested < 1 {
		return nil, shared.ErrInvalidInput
	}
	return &Line{
		BaseEntity: shared.NewBaseEntity(),
		Owner:      owner,
		ProductID:  productID,
		Quantity:   ClampAdd(requested, stock),
	}, nil
}

// ClampAdd returns the quantity stored when inserting a new line:
// the requested amount bounded by the per-item cap and available stock.
func ClampAdd(requested, stock int) int {
	q := requested
	if q > MaxQuantityPerItem {
		q = MaxQuantityPerItem
	}
	if q > stock {
		q = stock
	}
	return q
}

// ClampIncrement returns the quantity stored when adding to an existing
// line: current plus requested, bounded by the per-item cap and by stock.
func ClampIncrement(current, requested, stock int) int {
	q := current + requested
	if q > MaxQuantityPerItem {
		q = MaxQuantityPerItem
	}
	if q > stock {
		q = stock
	}
	return q
}

// ClampUpdate returns the quantity stored when a line is set to an
// absolute amount: requested bounded by stock and the per-item cap.
// Requests below one are coerced to one before clamping.
func ClampUpdate(requested, stock int) int {
	q := requested
	if q < 1 {
		q = 1
	}
	if q > stock {
		q = stock
	}
	if q > MaxQuantityPerItem {
		q = MaxQuantityPerItem
	}
	return q
}

// Increment folds a repeat add into the line quantity.
func (l *Line) Increment(requested, stock int) error {
	if requested < 1 {
		return shared.ErrInvalidInput
	}
	l.Quantity = ClampIncrement(l.Quantity, requested, stock)
	l.Touch()
	return nil
}

// SetQuantity replaces the line quantity with a clamped absolute value.
func (l *Line) SetQuantity(requested, stock int) {
	l.Quantity = ClampUpdate(requested, stock)
	l.Touch()
}
