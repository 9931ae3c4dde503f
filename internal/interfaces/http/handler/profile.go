package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"github.com/sunset/storefront/internal/application/identity"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// ProfileHandler serves the customer account pages
type ProfileHandler struct {
	BaseHandler
	service *identity.ProfileService
	auth    *middleware.Authenticator
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(service *identity.ProfileService, auth *middleware.Authenticator, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		auth:        auth,
	}
}

// RegisterRoutes mounts the profile endpoints on the given group
func (h *ProfileHandler) RegisterRoutes(group *gin.RouterGroup) {
	g := group.Group("/profile", h.auth.RequireAuth())
	g.GET("", h.Get)
	g.PUT("", h.Update)
	g.PUT("/password", h.ChangePassword)
}

// Get returns the account overview with order history aggregates
func (h *ProfileHandler) Get(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	result, err := h.service.Profile(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Update changes the customer's display name
func (h *ProfileHandler) Update(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var input identity.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	info, err := h.service.UpdateProfile(c.Request.Context(), customerID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, info)
}

// ChangePassword verifies the current password and sets a new one
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var input identity.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), customerID, input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Contraseña actualizada"})
}
