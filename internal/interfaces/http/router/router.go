package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"github.com/sunset/storefront/internal/infrastructure/config"
	"github.com/sunset/storefront/internal/infrastructure/logger"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
)

// defaultMaxBodyBytes caps JSON request bodies. The storefront has no
// upload endpoints, so 1 MiB is generous.
const defaultMaxBodyBytes = 1 << 20

// RouteRegistrar is implemented by handlers that mount their own routes
type RouteRegistrar interface {
	RegisterRoutes(group *gin.RouterGroup)
}

// Router assembles the gin engine from registered handlers
type Router struct {
	cfg        *config.Config
	logger     *zap.Logger
	registrars []RouteRegistrar
}

// New creates a router
func New(cfg *config.Config, logger *zap.Logger) *Router {
	return &Router{cfg: cfg, logger: logger}
}

// Register adds handlers whose routes will be mounted by Setup
func (r *Router) Register(registrars ...RouteRegistrar) {
	r.registrars = append(r.registrars, registrars...)
}

// Setup builds the engine with the middleware chain and all registered
// routes under /api.
func (r *Router) Setup() *gin.Engine {
	if r.cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(r.cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(r.cfg.HTTP.TrustedProxies)
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(r.logger),
		logger.GinMiddleware(r.logger),
		middleware.CORS(r.cfg.HTTP),
		middleware.BodyLimit(defaultMaxBodyBytes),
		middleware.GuestSession(r.cfg.Session),
	)

	api := engine.Group("/api")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	return engine
}
