package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	cartapp "github.com/sunset/storefront/internal/application/cart"
	catalogapp "github.com/sunset/storefront/internal/application/catalog"
	identityapp "github.com/sunset/storefront/internal/application/identity"
	reportapp "github.com/sunset/storefront/internal/application/report"
	tradeapp "github.com/sunset/storefront/internal/application/trade"
	"github.com/sunset/storefront/internal/infrastructure/auth"
	"github.com/sunset/storefront/internal/infrastructure/cache"
	"github.com/sunset/storefront/internal/infrastructure/config"
	"github.com/sunset/storefront/internal/infrastructure/logger"
	"github.com/sunset/storefront/internal/infrastructure/mail"
	"github.com/sunset/storefront/internal/infrastructure/persistence"
	"github.com/sunset/storefront/internal/interfaces/http/handler"
	"github.com/sunset/storefront/internal/interfaces/http/middleware"
	"github.com/sunset/storefront/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the logout token blacklist. The store keeps working
	// without it, minus early token invalidation.
	var blacklist auth.TokenBlacklist
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, logout will not revoke tokens", zap.Error(err))
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		defer func() {
			_ = redisClient.Close()
		}()
	}

	// Repositories
	lineRepo := persistence.NewGormCartLineRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	resetTokenRepo := persistence.NewGormResetTokenRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	txManager := persistence.NewGormTxManager(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	mailer := mail.NewLogMailer(cfg.App.BaseURL, log)

	cartService := cartapp.NewService(lineRepo, productRepo, txManager,
		cartapp.WithAtomicIncrements(cfg.Cart.AtomicIncrements),
		cartapp.WithLogger(log.Named("cart")),
	)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, log.Named("catalog"))
	authService := identityapp.NewAuthService(customerRepo, resetTokenRepo, txManager, jwtService, blacklist, mailer, log.Named("auth"))
	profileService := identityapp.NewProfileService(customerRepo, orderRepo, log.Named("profile"))
	orderService := tradeapp.NewOrderService(orderRepo, paymentRepo, log.Named("orders"))
	analyticsService := reportapp.NewAnalyticsService(reportRepo, log.Named("analytics"))

	// HTTP layer
	authenticator := middleware.NewAuthenticator(jwtService, blacklist)

	r := router.New(cfg, log)
	r.Register(
		handler.NewHealthHandler(db.DB),
		handler.NewCartHandler(cartService, authenticator, log),
		handler.NewCatalogHandler(productService, log),
		handler.NewAuthHandler(authService, authenticator, log),
		handler.NewProfileHandler(profileService, authenticator, log),
		handler.NewOrderHandler(orderService, authenticator, log),
		handler.NewAdminProductHandler(productService, authenticator, log),
		handler.NewAnalyticsHandler(analyticsService, orderService, authenticator, log),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r.Setup(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
