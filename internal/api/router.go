package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stockroom/inventory-system/internal/api/handler"
	"github.com/stockroom/inventory-system/internal/api/middleware"
	"github.com/stockroom/inventory-system/internal/core/auth"
	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/service"
	mongodb "github.com/stockroom/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/stockroom/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *auth.TokenCodec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, codec, log)
	dashboardService := service.NewDashboardService(catalogRepo, statsCache, log)

	carrier := middleware.NewCookieCarrier()
	session := middleware.Session(codec, carrier)

	authHandler := handler.NewAuthHandler(authService, carrier, codec.TTL())
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	catalogHandler := handler.NewCatalogHandler(catalogRepo)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Role-gated dashboards ---
	e.GET(middleware.PathAdminDashboard, dashboardHandler.Admin,
		session, middleware.RequireRole(domain.RoleAdmin))
	e.GET(middleware.PathStaffDashboard, dashboardHandler.Staff,
		session, middleware.RequireRole(domain.RoleStaff))

	// --- Catalog API (any authenticated role) ---
	catalog := e.Group("/api", session)
	catalog.GET("/categories", catalogHandler.ListCategories)
	catalog.GET("/products", catalogHandler.ListProducts)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
