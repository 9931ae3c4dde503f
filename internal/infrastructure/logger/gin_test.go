package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupObservedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)
	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	return router, recorded
}

func requestLog(t *testing.T, recorded *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	for _, entry := range recorded.All() {
		if entry.Message == "request completed" {
			return entry
		}
	}
	t.Fatal("no request log recorded")
	return observer.LoggedEntry{}
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	router, recorded := setupObservedRouter(t)
	router.GET("/productos", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/productos?categoria=aretes", nil)
	router.ServeHTTP(w, req)

	entry := requestLog(t, recorded)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/productos", fields["path"])
	assert.Equal(t, "categoria=aretes", fields["query"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestGinMiddlewareCarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-123")
		c.Next()
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	entry := requestLog(t, recorded)
	assert.Equal(t, "req-123", entry.ContextMap()["request_id"])
}

func TestGinMiddlewareWarnsOnClientError(t *testing.T) {
	router, recorded := setupObservedRouter(t)
	router.GET("/faltante", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/faltante", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, zapcore.WarnLevel, requestLog(t, recorded).Level)
}

func TestGinMiddlewareErrorsOnServerError(t *testing.T) {
	router, recorded := setupObservedRouter(t)
	router.GET("/roto", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/roto", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, zapcore.ErrorLevel, requestLog(t, recorded).Level)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("algo salió mal")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "panic recovered", logs[0].Message)
	assert.Equal(t, "/panic", logs[0].ContextMap()["path"])
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c), "missing logger yields a nop")

	stored := zap.NewNop().Named("req")
	c.Set("logger", stored)
	assert.Same(t, stored, GetGinLogger(c))
}
