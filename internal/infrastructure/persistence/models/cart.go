package models

import (
	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/cart"
)

// CartLineModel maps cart lines to the cart_lines table. A line is
// unique per owner, product and variant.
type CartLineModel struct {
	BaseModel
	OwnerKind string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_cart_line_key"`
	OwnerKey  string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_cart_line_key"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_line_key"`
	Quantity  int       `gorm:"not null"`
	Size      string    `gorm:"type:varchar(32);not null;default:'';uniqueIndex:idx_cart_line_key"`
	Color     string    `gorm:"type:varchar(32);not null;default:'';uniqueIndex:idx_cart_line_key"`
}

// TableName specifies the table name
func (CartLineModel) TableName() string {
	return "cart_lines"
}

// ToDomain converts the model to a domain cart line
func (m *CartLineModel) ToDomain() *cart.Line {
	return &cart.Line{
		BaseEntity: m.BaseModel.ToDomain(),
		Owner: cart.OwnerRef{
			Kind: cart.OwnerKind(m.OwnerKind),
			Key:  m.OwnerKey,
		},
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Size:      m.Size,
		Color:     m.Color,
	}
}

// FromDomain populates the model from a domain cart line
func (m *CartLineModel) FromDomain(l *cart.Line) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.OwnerKind = string(l.Owner.Kind)
	m.OwnerKey = l.Owner.Key
	m.ProductID = l.ProductID
	m.Quantity = l.Quantity
	m.Size = l.Size
	m.Color = l.Color
}
