package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/catalog"
	"github.com/sunset/storefront/internal/domain/shared"
)

// ListProductsInput carries storefront and admin listing filters
type ListProductsInput struct {
	Search          string
	CategorySlug    string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	Featured        *bool
	IncludeInactive bool
	SortBy          string
	SortOrder       string
	Page            int
	PageSize        int
}

// CreateProductInput contains input for product creation
type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Featured    bool            `json:"featured"`
}

// UpdateProductInput contains input for product updates
type UpdateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Featured    *bool           `json:"featured"`
	Active      *bool           `json:"active"`
}

// ProductResponse is a product as returned to clients
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Featured    bool            `json:"featured"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CategoryResponse is a category as returned to clients
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductListResponse is a paginated product listing
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Featured:    p.Featured,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductListResponse(page shared.Paginated[catalog.Product]) *ProductListResponse {
	products := make([]ProductResponse, len(page.Items))
	for i := range page.Items {
		products[i] = toProductResponse(&page.Items[i])
	}
	return &ProductListResponse{
		Products:   products,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
