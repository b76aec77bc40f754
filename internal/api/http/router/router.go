package router

import (
	"github.com/labstack/echo/v4"

	"github.com/27Chinedu/Module13Assignment/internal/api/http/handler"
	"github.com/27Chinedu/Module13Assignment/internal/api/http/middleware"
	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
	"github.com/27Chinedu/Module13Assignment/internal/service"
	"github.com/27Chinedu/Module13Assignment/internal/telemetry/metric"
)

// Router registers HTTP routes and middleware for the API.
type Router struct {
	authService        *service.Auth
	calculationService *service.Calculation
	tokenService       *service.TokenService
	contextManager     model.ContextManager
	db                 handler.Pinger
	metrics            *metric.Metrics
	logger             *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	calculationService *service.Calculation,
	tokenService *service.TokenService,
	contextManager model.ContextManager,
	db handler.Pinger,
	metrics *metric.Metrics,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:        authService,
		calculationService: calculationService,
		tokenService:       tokenService,
		contextManager:     contextManager,
		db:                 db,
		metrics:            metrics,
		logger:             logger,
	}
}

// Register builds the echo instance with all routes and middleware.
// Token refresh and logout take the refresh token in the body, so they
// stay outside the authenticated groups.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logging := middleware.NewLogging(r.logger)
	metrics := middleware.NewMetrics(r.metrics)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	e.Use(logging.Handle, metrics.Handle)

	authHandler := handler.NewAuth(r.authService, r.tokenService, r.contextManager, r.logger)
	calculationHandler := handler.NewCalculation(r.calculationService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.db, r.logger)

	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/password", authHandler.ChangePassword, authenticate.Handle)

	e.GET("/users/me", authHandler.Me, authenticate.Handle)

	calculations := e.Group("/calculations", authenticate.Handle)
	calculations.POST("", calculationHandler.Create)
	calculations.GET("", calculationHandler.List)
	calculations.GET("/:id", calculationHandler.Get)
	calculations.PUT("/:id", calculationHandler.Update)
	calculations.DELETE("/:id", calculationHandler.Delete)

	e.GET("/healthz", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	return e
}
