package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/verdantis/nursery-system/internal/api/handler"
	"github.com/verdantis/nursery-system/internal/api/middleware"
	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/service"
	mongodb "github.com/verdantis/nursery-system/internal/infrastructure/db/mongo"
	redisdb "github.com/verdantis/nursery-system/internal/infrastructure/db/redis"
	"github.com/verdantis/nursery-system/internal/infrastructure/queue"
)

// Config carries the settings the router needs beyond its connections.
type Config struct {
	JWTSecret       string
	TokenTTL        time.Duration
	SessionFallback bool
	StockWorkers    int
}

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the stock event dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("nursery"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	plantRepo := mongodb.NewPlantRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	stockAuditRepo := mongodb.NewStockAuditRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Services ---
	component := func(name string) zerolog.Logger {
		return log.With().Str("component", name).Logger()
	}
	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.TokenTTL)
	sessionReader := service.NewSessionReader(sessionStore, cfg.SessionFallback, component("session"))
	catalogService := service.NewCatalogService(plantRepo, component("catalog"))
	orderService := service.NewOrderService(orderRepo, plantRepo, component("orders"))
	feedbackService := service.NewFeedbackService(feedbackRepo, component("feedback"))
	stockService := service.NewStockEventService(plantRepo, stockAuditRepo, dedup, component("stock_events"))
	dispatcher := queue.NewDispatcher(cfg.StockWorkers, stockService, component("dispatcher"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	plantHandler := handler.NewPlantHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	stockHandler := handler.NewStockHandler(dispatcher)
	navHandler := handler.NewNavigationHandler()

	// --- Session resolution (never rejects; the gate decides) ---
	e.Use(middleware.Session(sessionReader, log))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Gate redirect targets ---
	e.GET("/register", navHandler.Register)
	e.GET("/access-denied", navHandler.AccessDenied)

	// --- Catalog & inventory ---
	anyStaff := middleware.Gate(
		domain.RoleCustomer,
		domain.RoleManager,
		domain.RoleWarehouseEmployee,
		domain.RoleDeliveryCompany,
		domain.RoleAgriculturalEngineer,
	)
	v1 := e.Group("/v1")
	v1.GET("/plants", plantHandler.List, anyStaff)
	v1.GET("/plants/low-stock", plantHandler.LowStock, middleware.Gate(domain.RoleManager))
	v1.GET("/plants/:sku", plantHandler.Get, anyStaff)
	v1.POST("/plants", plantHandler.Create, middleware.Gate(domain.RoleManager))
	v1.PUT("/plants/:sku", plantHandler.Update, middleware.Gate(domain.RoleManager))
	v1.PATCH("/plants/:sku/stock", plantHandler.AdjustStock, middleware.Gate(domain.RoleWarehouseEmployee, domain.RoleManager))
	v1.PUT("/plants/:sku/care-notes", plantHandler.UpdateCareNotes, middleware.Gate(domain.RoleAgriculturalEngineer))

	// --- Orders ---
	v1.POST("/orders", orderHandler.Place, middleware.Gate(domain.RoleCustomer))
	v1.GET("/orders", orderHandler.List, middleware.Gate(domain.RoleCustomer, domain.RoleManager, domain.RoleDeliveryCompany))
	v1.GET("/orders/:order_number", orderHandler.Get, middleware.Gate(domain.RoleCustomer, domain.RoleManager, domain.RoleDeliveryCompany))
	v1.PATCH("/orders/:order_number/status", orderHandler.UpdateStatus, middleware.Gate(domain.RoleManager, domain.RoleDeliveryCompany))

	// --- Feedback ---
	v1.POST("/feedback", feedbackHandler.Submit, middleware.Gate(domain.RoleCustomer))
	v1.GET("/feedback", feedbackHandler.List, middleware.Gate(domain.RoleManager))
	v1.GET("/feedback/stats", feedbackHandler.Stats, middleware.Gate(domain.RoleManager))

	// --- Stock events ---
	stockGate := middleware.Gate(domain.RoleWarehouseEmployee, domain.RoleManager)
	v1.POST("/stock/events", stockHandler.Receive, stockGate)
	v1.POST("/stock/events/batch", stockHandler.ReceiveBatch, stockGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
