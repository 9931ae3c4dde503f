package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/infrastructure/auth"
	"github.com/sunset/storefront/internal/interfaces/http/dto"
)

const (
	// ClaimsContextKey is the gin context key holding validated JWT claims
	ClaimsContextKey = "jwt_claims"

	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// Authenticator validates bearer tokens and checks revocation
type Authenticator struct {
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
}

// NewAuthenticator creates auth middleware around a JWT service and a
// token blacklist. The blacklist may be nil, in which case logout does
// not invalidate tokens early.
func NewAuthenticator(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *Authenticator {
	return &Authenticator{jwt: jwtService, blacklist: blacklist}
}

// RequireAuth rejects requests without a valid, non-revoked bearer token
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := a.authenticate(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// OptionalAuth validates a bearer token when present but lets
// unauthenticated requests through. Used on endpoints that serve both
// guests and logged-in customers.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(authorizationHeader) == "" {
			c.Next()
			return
		}
		claims, err := a.authenticate(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose token lacks the
// admin claim. Must run after RequireAuth.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortUnauthorized(c, auth.ErrInvalidToken)
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Se requiere cuenta de administrador"))
			return
		}
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader(authorizationHeader)
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, auth.ErrInvalidToken
	}

	claims, err := a.jwt.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return nil, err
	}

	if a.blacklist != nil && claims.ID != "" {
		revoked, err := a.blacklist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, auth.ErrTokenBlacklisted
		}
	}

	return claims, nil
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "No autorizado"
	switch err {
	case auth.ErrExpiredToken:
		message = "La sesión ha expirado"
	case auth.ErrTokenBlacklisted:
		message = "La sesión ha sido cerrada"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}

// GetClaims returns the validated JWT claims stored by the auth middleware
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetCustomerID returns the authenticated customer's ID, if any
func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := claims.GetUserUUID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
