package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/shared"
)

// Product is a handmade item offered in the store. Sizes and colors are
// optional variant axes; products without variants leave them empty.
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	CategoryID  uuid.UUID
	Sizes       []string
	Colors      []string
	Featured    bool
	Active      bool
}

// NewProduct creates a product in the active state.
func NewProduct(name, description string, price decimal.Decimal, stock int, categoryID uuid.UUID) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product stock cannot be negative")
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		Active:      true,
	}, nil
}

// IsAvailable reports whether the product can be added to a cart.
func (p *Product) IsAvailable() bool {
	return p.Active
}

// HasVariant reports whether the given size and color combination is
// valid for this product. Empty values are accepted when the product
// does not define that axis.
func (p *Product) HasVariant(size, color string) bool {
	if size != "" && !contains(p.Sizes, size) {
		return false
	}
	if color != "" && !contains(p.Colors, color) {
		return false
	}
	return true
}

// UpdateDetails replaces the editable fields of the product.
func (p *Product) UpdateDetails(name, description string, price decimal.Decimal, stock int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_PRODUCT", "Product name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRODUCT", "Product price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_PRODUCT", "Product stock cannot be negative")
	}
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.Price = price
	p.Stock = stock
	p.Touch()
	return nil
}

// Activate puts the product back on sale.
func (p *Product) Activate() {
	p.Active = true
	p.Touch()
}

// Deactivate hides the product from the storefront without deleting it.
func (p *Product) Deactivate() {
	p.Active = false
	p.Touch()
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
