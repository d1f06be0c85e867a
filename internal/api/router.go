package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/multirole/auth-api/internal/api/handler"
	"github.com/multirole/auth-api/internal/api/middleware"
	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
	"github.com/multirole/auth-api/internal/infrastructure/config"
	redisinfra "github.com/multirole/auth-api/internal/infrastructure/db/redis"
)

// Deps carries the already-constructed collaborators the router wires into
// handlers. Construction happens in main so the audit pipeline can be shared
// between the HTTP layer and the core services.
type Deps struct {
	Users    ports.UserRepository
	Audit    ports.AuditRepository
	Auth     ports.AuthService
	Tokens   ports.TokenIssuer
	Recorder ports.AuditRecorder
	Mongo    *mongo.Database
	Redis    *redis.Client
	Config   *config.Config
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestMeta())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	var throttle handler.LoginThrottle
	if d.Redis != nil {
		throttle = redisinfra.NewLoginThrottle(d.Redis, 0)
	}
	authHandler := handler.NewAuthHandler(d.Auth, d.Tokens, d.Recorder, throttle, d.Log)
	menuHandler := handler.NewMenuHandler()
	dashboardHandler := handler.NewDashboardHandler(d.Users, d.Audit)
	usersHandler := handler.NewUsersHandler(d.Users, d.Recorder)
	authMiddleware := middleware.Auth(d.Config.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/menu", menuHandler.Menu, authMiddleware)

	dashboard := e.Group("/api/dashboard", authMiddleware)
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/activity", dashboardHandler.Activity)

	users := e.Group("/api/users", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	users.GET("", usersHandler.List)
	users.PUT("/:id", usersHandler.Update)
	users.DELETE("/:id", usersHandler.Deactivate)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
