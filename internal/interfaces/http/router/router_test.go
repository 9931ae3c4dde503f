package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"github.com/sunset/storefront/internal/infrastructure/config"
)

type pingRegistrar struct{}

func (pingRegistrar) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		Session: config.SessionConfig{
			CookieName: "sunset_session",
			MaxAge:     time.Hour,
			SameSite:   "lax",
		},
		HTTP: config.HTTPConfig{
			CORSAllowOrigins: []string{"*"},
			CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			CORSAllowHeaders: []string{"Authorization", "Content-Type"},
		},
	}
}

func TestRouterMountsRegistrarsUnderAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testConfig(), zap.NewNop())
	r.Register(pingRegistrar{})

	engine := r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterAppliesGuestSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testConfig(), zap.NewNop())
	r.Register(pingRegistrar{})

	engine := r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "sunset_session", cookies[0].Name)
}

func TestRouterUnknownRouteAnswers404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(testConfig(), zap.NewNop())

	engine := r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
