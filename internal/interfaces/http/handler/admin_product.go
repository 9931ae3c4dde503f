package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	appcatalog "github.com/sunset/storefront/internal/application/catalog"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// AdminProductHandler serves product management for the back office
type AdminProductHandler struct {
	BaseHandler
	service *appcatalog.ProductService
	auth    *middleware.Authenticator
}

// NewAdminProductHandler creates an admin product handler
func NewAdminProductHandler(service *appcatalog.ProductService, auth *middleware.Authenticator, logger *zap.Logger) *AdminProductHandler {
	return &AdminProductHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		auth:        auth,
	}
}

// RegisterRoutes mounts the admin product endpoints on the given group
func (h *AdminProductHandler) RegisterRoutes(group *gin.RouterGroup) {
	g := group.Group("/admin/products", h.auth.RequireAuth(), h.auth.RequireAdmin())
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.POST("/import", h.Import)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Deactivate)
}

// List returns every product, inactive ones included
func (h *AdminProductHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "")
		return
	}
	q.Normalize()

	result, err := h.service.List(c.Request.Context(), appcatalog.ListProductsInput{
		Search:          q.Search,
		CategorySlug:    q.Category,
		IncludeInactive: true,
		SortBy:          q.SortBy,
		SortOrder:       q.SortOrder,
		Page:            q.Page,
		PageSize:        q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Get returns one product regardless of its active flag
func (h *AdminProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	product, err := h.service.GetForAdmin(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, product)
}

// Create adds a product to the catalog
func (h *AdminProductHandler) Create(c *gin.Context) {
	var input appcatalog.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	product, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Import bulk-creates products from an uploaded CSV file. The file
// goes in the "file" multipart field; bad rows are reported per row
// without aborting the import.
func (h *AdminProductHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Se requiere un archivo CSV en el campo 'file'")
		return
	}
	defer file.Close()

	result, err := h.service.ImportProducts(c.Request.Context(), file)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Update replaces a product's details
func (h *AdminProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	var input appcatalog.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, product)
}

// Deactivate soft-deletes a product so existing cart lines keep their
// reference but the product stops being sellable.
func (h *AdminProductHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Producto desactivado"})
}
