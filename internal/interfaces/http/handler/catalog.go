package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	appcatalog "github.com/sunset/storefront/internal/application/catalog"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
)

// CatalogHandler serves the public product browsing endpoints
type CatalogHandler struct {
	BaseHandler
	service *appcatalog.ProductService
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(service *appcatalog.ProductService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// RegisterRoutes mounts the catalog endpoints on the given group
func (h *CatalogHandler) RegisterRoutes(group *gin.RouterGroup) {
	g := group.Group("/catalog")
	g.GET("/products", h.List)
	g.GET("/products/:id", h.Get)
	g.POST("/products/batch", h.GetBatch)
	g.GET("/categories", h.ListCategories)
	g.GET("/price-range", h.PriceRange)
}

// listQuery holds the catalog listing query parameters
type listQuery struct {
	dto.ListRequest
	Search    string `form:"search"`
	Category  string `form:"category"`
	MinPrice  string `form:"min_price"`
	MaxPrice  string `form:"max_price"`
	Featured  *bool  `form:"featured"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// List returns active products filtered by search, category and price
func (h *CatalogHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}
	q.Normalize()

	input := appcatalog.ListProductsInput{
		Search:       strings.TrimSpace(q.Search),
		CategorySlug: q.Category,
		Featured:     q.Featured,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}

	var ok bool
	if input.MinPrice, ok = parsePrice(q.MinPrice); !ok {
		h.BadRequest(c, "Precio mínimo inválido")
		return
	}
	if input.MaxPrice, ok = parsePrice(q.MaxPrice); !ok {
		h.BadRequest(c, "Precio máximo inválido")
		return
	}

	result, err := h.service.List(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Get returns a single active product
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	product, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, product)
}

// batchRequest is the payload for resolving several products at once,
// used by the frontend to hydrate a locally stored guest cart.
type batchRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

// GetBatch returns the active products among the requested IDs.
// Unknown and inactive IDs are silently omitted.
func (h *CatalogHandler) GetBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "")
		return
	}

	products, err := h.service.GetBatch(c.Request.Context(), req.IDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, products)
}

// ListCategories returns all product categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, categories)
}

// PriceRange returns the min and max price across active products,
// used to bound the storefront price filter slider.
func (h *CatalogHandler) PriceRange(c *gin.Context) {
	pr, err := h.service.PriceRange(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, pr)
}

func parsePrice(raw string) (*decimal.Decimal, bool) {
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, false
	}
	return &d, true
}
