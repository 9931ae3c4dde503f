package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sunset/storefront/internal/infrastructure/config"
)

// SessionContextKey is the gin context key holding the guest session ID
const SessionContextKey = "guest_session_id"

// GuestSession ensures every request carries a guest session cookie.
// Anonymous visitors get a fresh UUID on first contact; the cookie
// identifies their cart until they log in and migrate it.
func GuestSession(cfg config.SessionConfig) gin.HandlerFunc {
	sameSite := parseSameSite(cfg.SameSite)

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || !isValidSessionID(sessionID) {
			sessionID = uuid.New().String()
			c.SetSameSite(sameSite)
			c.SetCookie(cfg.CookieName, sessionID, int(cfg.MaxAge.Seconds()), "/", cfg.Domain, cfg.Secure, true)
		}
		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the guest session ID set by GuestSession
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}

func isValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
