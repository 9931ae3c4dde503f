package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/domain/catalog"
	"github.com/sunset/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles catalog operations for both the storefront
// and the admin panel.
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	logger     *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, categories catalog.CategoryRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		logger:     logger,
	}
}

// List returns filtered, paginated products. Storefront callers get
// active products only; the admin listing includes inactive ones.
func (s *ProductService) List(ctx context.Context, input ListProductsInput) (*ProductListResponse, error) {
	filter := catalog.ProductFilter{
		Filter: shared.Filter{
			Page:     input.Page,
			PageSize: input.PageSize,
			OrderBy:  input.SortBy,
			OrderDir: input.SortOrder,
			Search:   input.Search,
		},
		CategorySlug: input.CategorySlug,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		Featured:     input.Featured,
		ActiveOnly:   !input.IncludeInactive,
	}

	page, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(page), nil
}

// Get returns an active product by id. Inactive products are hidden
// from the storefront.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, shared.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetForAdmin returns a product regardless of its active state
func (s *ProductService) GetForAdmin(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetBatch returns the active products among the requested ids. Used by
// the client to price locally held guest carts.
func (s *ProductService) GetBatch(ctx context.Context, ids []uuid.UUID) ([]ProductResponse, error) {
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = toProductResponse(&products[i])
	}
	return responses, nil
}

// PriceRange returns the storefront price bounds for filter widgets
func (s *ProductService) PriceRange(ctx context.Context) (*catalog.PriceRange, error) {
	return s.products.PriceRange(ctx)
}

// ListCategories returns all categories
func (s *ProductService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	return responses, nil
}

// Create adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductResponse, error) {
	product, err := catalog.NewProduct(input.Name, input.Description, input.Price, input.Stock, input.CategoryID)
	if err != nil {
		return nil, err
	}
	product.ImageURL = input.ImageURL
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.Featured = input.Featured

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := toProductResponse(product)
	return &resp, nil
}

// Update replaces the editable fields of a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateDetails(input.Name, input.Description, input.Price, input.Stock); err != nil {
		return nil, err
	}
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.Active != nil {
		if *input.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Deactivate hides a product from the storefront. Deletion is always
// soft; order history keeps referencing the product.
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Deactivate()
	if err := s.products.Save(ctx, product); err != nil {
		return err
	}

	s.logger.Info("product deactivated", zap.String("product_id", id.String()))
	return nil
}
