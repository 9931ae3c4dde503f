package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/cart"
)

// AddRequest is the input for adding a product to a cart
type AddRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

// UpdateQuantityRequest is the input for setting a line's quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// MigrateEntry is one locally held line submitted after login
type MigrateEntry struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

// MigrateRequest is the guest cart migration payload
type MigrateRequest struct {
	Items []MigrateEntry `json:"items" binding:"required"`
}

// LineResponse is one cart line with product details
type LineResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `json:"quantity"`
	Size         string          `json:"size,omitempty"`
	Color        string          `json:"color,omitempty"`
	Stock        int             `json:"stock"`
	Available    bool            `json:"available"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CartResponse is the full cart listing
type CartResponse struct {
	Items []LineResponse  `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// toLineResponse maps a repository line detail to the API shape
func toLineResponse(d cart.LineDetail) LineResponse {
	return LineResponse{
		ID:           d.ID,
		ProductID:    d.ProductID,
		ProductName:  d.ProductName,
		ProductPrice: d.ProductPrice,
		ProductImage: d.ProductImage,
		Quantity:     d.Quantity,
		Size:         d.Size,
		Color:        d.Color,
		Stock:        d.Stock,
		Available:    d.Active,
		Subtotal:     d.ProductPrice.Mul(decimal.NewFromInt(int64(d.Quantity))),
	}
}
