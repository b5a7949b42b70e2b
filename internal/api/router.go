package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/superapp/tool-portal/internal/api/handler"
	"github.com/superapp/tool-portal/internal/api/middleware"
	"github.com/superapp/tool-portal/internal/core/service"
	"github.com/superapp/tool-portal/internal/infrastructure/db/sqlite"
	"github.com/superapp/tool-portal/internal/infrastructure/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, sessions *session.Manager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	toolRepo := sqlite.NewToolRepository(db)
	selectionRepo := sqlite.NewSelectionRepository(db)

	authService := service.NewAuthService(userRepo, log)
	dashboardService := service.NewDashboardService(toolRepo, selectionRepo, log)
	selectionService := service.NewSelectionService(toolRepo, selectionRepo, log)
	catalogService := service.NewCatalogService(toolRepo, log)

	resolve := middleware.Resolve(sessions)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(authService, sessions)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/guest", authHandler.Guest)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session, resolve)

	// --- Portal routes (any established principal) ---
	dashboardHandler := handler.NewDashboardHandler(dashboardService, selectionService, sessions)
	portal := e.Group("/portal", resolve, middleware.RequireSession())
	portal.GET("/dashboard", dashboardHandler.View)
	portal.PUT("/categories/:category/selection", dashboardHandler.Select)

	// --- Admin routes ---
	adminHandler := handler.NewAdminHandler(catalogService)
	admin := e.Group("/admin", resolve, middleware.RequireAdmin())
	admin.GET("/tools", adminHandler.List)
	admin.POST("/tools", adminHandler.Create)
	admin.PUT("/tools/:id", adminHandler.Update)
	admin.DELETE("/tools/:id", adminHandler.Delete)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
