package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	appcart "github.com/sunset/storefront/internal/application/cart"
	"github.com/sunset/storefront/internal/domain/cart"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// CartHandler serves the storefront cart endpoints. Responses keep the
// flat JSON shape the frontend already consumes: {"success": ..., and
// either "message", "count" or the cart payload at the top level}.
type CartHandler struct {
	BaseHandler
	service *appcart.Service
	auth    *middleware.Authenticator
}

// NewCartHandler creates a cart handler
func NewCartHandler(service *appcart.Service, auth *middleware.Authenticator, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		auth:        auth,
	}
}

// RegisterRoutes mounts the cart endpoints on the given group
func (h *CartHandler) RegisterRoutes(group *gin.RouterGroup) {
	g := group.Group("/cart", h.auth.OptionalAuth())
	g.GET("", h.List)
	g.GET("/count", h.Count)
	g.POST("/add", h.Add)
	g.PUT("/update/:id", h.UpdateQuantity)
	g.DELETE("/remove/:id", h.Remove)
	g.POST("/sync-from-local", h.auth.RequireAuth(), h.SyncFromLocal)
}

// List returns the cart contents with per-line product details
func (h *CartHandler) List(c *gin.Context) {
	owner, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), owner)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   result.Items,
		"count":   result.Count,
		"total":   result.Total,
	})
}

// Count returns the total quantity across all cart lines
func (h *CartHandler) Count(c *gin.Context) {
	owner, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	count, err := h.service.Count(c.Request.Context(), owner)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// Add puts a product in the cart, merging with an existing line for the
// same product and variant.
func (h *CartHandler) Add(c *gin.Context) {
	owner, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	var req appcart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.cartError(c, shared.ErrInvalidInput)
		return
	}

	if err := h.service.Add(c.Request.Context(), owner, req); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto agregado al carrito"})
}

// UpdateQuantity sets a cart line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	owner, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.cartError(c, shared.ErrLineNotFound)
		return
	}

	var req appcart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.cartError(c, shared.ErrInvalidInput)
		return
	}

	if err := h.service.UpdateQuantity(c.Request.Context(), owner, lineID, req.Quantity); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cantidad actualizada"})
}

// Remove deletes a cart line
func (h *CartHandler) Remove(c *gin.Context) {
	owner, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.cartError(c, shared.ErrLineNotFound)
		return
	}

	if err := h.service.Remove(c.Request.Context(), owner, lineID); err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producto eliminado"})
}

// SyncFromLocal merges a locally held guest cart into the logged-in
// customer's cart. Requires authentication.
func (h *CartHandler) SyncFromLocal(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.cartError(c, shared.ErrUnauthorized)
		return
	}

	var req appcart.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.cartError(c, shared.ErrInvalidInput)
		return
	}

	entries := make([]cart.GuestEntry, 0, len(req.Items))
	for _, item := range req.Items {
		entries = append(entries, cart.GuestEntry{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	migrated, err := h.service.MigrateGuestCart(c.Request.Context(), cart.CustomerOwner(customerID.String()), entries)
	if err != nil {
		h.cartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("%d productos migrados correctamente", migrated),
		"migrated": migrated,
	})
}

// resolveOwner identifies whose cart this request touches: the JWT
// customer when authenticated, otherwise the guest session cookie.
func (h *CartHandler) resolveOwner(c *gin.Context) (cart.OwnerRef, bool) {
	if customerID, ok := middleware.GetCustomerID(c); ok {
		return cart.CustomerOwner(customerID.String()), true
	}
	if sessionID, ok := middleware.GetSessionID(c); ok {
		return cart.GuestOwner(sessionID), true
	}
	h.cartError(c, shared.ErrUnauthorized)
	return cart.OwnerRef{}, false
}

// cartError writes the flat error shape the storefront frontend expects
func (h *CartHandler) cartError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), gin.H{"success": false, "message": domainErr.Message})
		return
	}
	h.logger.Error("cart request failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error interno del servidor"})
}
