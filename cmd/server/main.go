package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mdapp "github.com/procure/backend/internal/application/masterdata"
	procureapp "github.com/procure/backend/internal/application/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/infrastructure/cache"
	"github.com/procure/backend/internal/infrastructure/config"
	"github.com/procure/backend/internal/infrastructure/logger"
	"github.com/procure/backend/internal/infrastructure/persistence"
	"github.com/procure/backend/internal/interfaces/http/handler"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"github.com/procure/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
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

	log.Info("Starting Procurement Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	uomRepo := persistence.NewGormUOMRepository(db.DB)
	uomConversionRepo := persistence.NewGormUOMConversionRepository(db.DB)
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB)
	exchangeRateRepo := persistence.NewGormExchangeRateRepository(db.DB)
	siteRepo := persistence.NewGormSiteRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)

	// Initialize application services
	companyService := mdapp.NewCompanyService(companyRepo)
	vendorService := mdapp.NewVendorService(vendorRepo, companyRepo)
	itemService := mdapp.NewItemService(itemRepo)
	uomService := mdapp.NewUOMService(uomRepo, uomConversionRepo)
	currencyService := mdapp.NewCurrencyService(currencyRepo, exchangeRateRepo)
	siteService := mdapp.NewSiteService(siteRepo, companyRepo)
	purchaseOrderService := procureapp.NewPurchaseOrderService(purchaseOrderRepo)

	// JWT token service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Idempotency store (redis in production, in-memory for single
	// instance deployments)
	var idempotencyStore shared.IdempotencyStore
	if cfg.Idempotency.Enabled {
		storeFactory := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log))
		switch cfg.Idempotency.Backend {
		case "redis":
			idempotencyStore, err = storeFactory.CreateStore()
			if err != nil {
				log.Fatal("Failed to create idempotency store", zap.Error(err))
			}
		default:
			idempotencyStore = storeFactory.CreateInMemoryStore()
		}
		defer func() {
			if err := idempotencyStore.Close(); err != nil {
				log.Error("Error closing idempotency store", zap.Error(err))
			}
		}()
	}

	// Initialize HTTP handlers
	companyHandler := handler.NewCompanyHandler(companyService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	itemHandler := handler.NewItemHandler(itemService)
	uomHandler := handler.NewUOMHandler(uomService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	siteHandler := handler.NewSiteHandler(siteService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	publicPaths := []string{
		"/api/v1/ping",
		"/api/v1/system/ping",
		"/api/v1/system/info",
	}

	// Authentication and tenant resolution for all API routes
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  publicPaths,
		Logger:     log,
	}))

	tenantConfig := middleware.DefaultTenantConfig()
	tenantConfig.SkipPaths = append(tenantConfig.SkipPaths, publicPaths...)
	tenantConfig.Logger = log
	r.Use(middleware.TenantMiddlewareWithConfig(tenantConfig))

	// Idempotency keys on write endpoints
	if cfg.Idempotency.Enabled {
		idemConfig := middleware.DefaultIdempotencyConfig(idempotencyStore, cfg.Idempotency.TTL)
		idemConfig.Logger = log
		r.Use(middleware.IdempotencyMiddlewareWithConfig(idemConfig))
	}

	// Purchase orders
	orderRoutes := router.NewResourceGroup("purchase-orders", "/purchase-orders")
	orderRoutes.POST("", purchaseOrderHandler.Create)
	orderRoutes.GET("", purchaseOrderHandler.List)
	orderRoutes.GET("/:id", purchaseOrderHandler.GetByID)
	orderRoutes.PATCH("/:id", purchaseOrderHandler.Update)
	orderRoutes.POST("/:id/actions", purchaseOrderHandler.Act)

	// Companies
	companyRoutes := router.NewResourceGroup("companies", "/companies")
	companyRoutes.POST("", companyHandler.Create)
	companyRoutes.GET("", companyHandler.List)
	companyRoutes.GET("/:id", companyHandler.GetByID)
	companyRoutes.PATCH("/:id", companyHandler.Update)
	companyRoutes.DELETE("/:id", companyHandler.Delete)

	// Vendors
	vendorRoutes := router.NewResourceGroup("vendors", "/vendors")
	vendorRoutes.POST("", vendorHandler.Create)
	vendorRoutes.GET("", vendorHandler.List)
	vendorRoutes.GET("/:id", vendorHandler.GetByID)
	vendorRoutes.PATCH("/:id", vendorHandler.Update)
	vendorRoutes.DELETE("/:id", vendorHandler.Delete)
	vendorRoutes.GET("/:id/statistics", purchaseOrderHandler.GetVendorStatistics)

	// Items
	itemRoutes := router.NewResourceGroup("items", "/items")
	itemRoutes.POST("", itemHandler.Create)
	itemRoutes.GET("", itemHandler.List)
	itemRoutes.GET("/:id", itemHandler.GetByID)
	itemRoutes.PATCH("/:id", itemHandler.Update)
	itemRoutes.DELETE("/:id", itemHandler.Delete)

	// Units of measure
	uomRoutes := router.NewResourceGroup("uoms", "/uoms")
	uomRoutes.POST("", uomHandler.Create)
	uomRoutes.GET("", uomHandler.List)
	uomRoutes.POST("/conversions", uomHandler.CreateConversion)
	uomRoutes.GET("/conversions/:from_id/:to_id", uomHandler.GetConversion)
	uomRoutes.DELETE("/conversions/:id", uomHandler.DeleteConversion)
	uomRoutes.GET("/:id", uomHandler.GetByID)
	uomRoutes.GET("/:id/conversions", uomHandler.ListConversions)
	uomRoutes.DELETE("/:id", uomHandler.Delete)

	// Currencies
	currencyRoutes := router.NewResourceGroup("currencies", "/currencies")
	currencyRoutes.POST("", currencyHandler.Create)
	currencyRoutes.GET("", currencyHandler.List)
	currencyRoutes.POST("/exchange-rates", currencyHandler.CreateExchangeRate)
	currencyRoutes.GET("/exchange-rates/:base_id/:target_id", currencyHandler.GetLatestExchangeRate)
	currencyRoutes.GET("/:id", currencyHandler.GetByID)
	currencyRoutes.GET("/:id/exchange-rates", currencyHandler.ListExchangeRates)
	currencyRoutes.DELETE("/:id", currencyHandler.Delete)

	// Sites
	siteRoutes := router.NewResourceGroup("sites", "/sites")
	siteRoutes.POST("", siteHandler.Create)
	siteRoutes.GET("", siteHandler.List)
	siteRoutes.GET("/:id", siteHandler.GetByID)
	siteRoutes.POST("/:id/deactivate", siteHandler.Deactivate)
	siteRoutes.DELETE("/:id", siteHandler.Delete)

	// System
	systemRoutes := router.NewResourceGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(orderRoutes).
		Register(companyRoutes).
		Register(vendorRoutes).
		Register(itemRoutes).
		Register(uomRoutes).
		Register(currencyRoutes).
		Register(siteRoutes).
		Register(systemRoutes)

	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
