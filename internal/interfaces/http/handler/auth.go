package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"github.com/sunset/storefront/internal/application/identity"
	"github.com/sunset/storefront/internal/domain/shared"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// AuthHandler serves registration, login and password recovery
type AuthHandler struct {
	BaseHandler
	service *identity.AuthService
	auth    *middleware.Authenticator
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(service *identity.AuthService, auth *middleware.Authenticator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		auth:        auth,
	}
}

// RegisterRoutes mounts the auth endpoints on the given group
func (h *AuthHandler) RegisterRoutes(group *gin.RouterGroup) {
	g := group.Group("/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/oauth/callback", h.OAuthCallback)
	g.POST("/forgot-password", h.ForgotPassword)
	g.POST("/reset-password", h.ResetPassword)
	g.POST("/logout", h.auth.RequireAuth(), h.Logout)
	g.GET("/me", h.auth.RequireAuth(), h.Me)
}

// Register creates a customer account and returns an access token
func (h *AuthHandler) Register(c *gin.Context) {
	var input identity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	result, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates a customer and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var input identity.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// OAuthCallback signs a customer in through a social identity provider,
// linking the provider to an existing account with the same email.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	var input identity.OAuthLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	result, err := h.service.HandleOAuthLogin(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, result)
}

// Logout revokes the current access token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok || claims.ExpiresAt == nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	err := h.service.Logout(c.Request.Context(), identity.LogoutInput{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Sesión cerrada"})
}

// Me returns the authenticated customer's basic account info
func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	info, err := h.service.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, info)
}

// ForgotPassword issues a reset token. Always answers 200 so the
// endpoint cannot be used to probe which emails have accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input identity.RequestPasswordResetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	if err := h.service.RequestPasswordReset(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message": "Si el correo existe, recibirás instrucciones para restablecer tu contraseña",
	}))
}

// ResetPassword consumes a reset token and sets a new password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input identity.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "Contraseña actualizada"})
}
