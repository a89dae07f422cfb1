package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cofd-tools/character-api/docs"
	"github.com/cofd-tools/character-api/internal/api/handler"
	"github.com/cofd-tools/character-api/internal/api/middleware"
	"github.com/cofd-tools/character-api/internal/core/ports"
)

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Auth       ports.AuthService
	Characters ports.CharacterService
	Merits     ports.MeritService

	// Mongo and Redis are only used by the readiness probe and may be nil.
	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret    string
	ClientOrigin string
	Logger       zerolog.Logger

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{deps.ClientOrigin},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderLocation},
	}))

	if deps.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "character_api",
			Registerer: deps.Registry,
		}))
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	} else {
		e.Use(echoprometheus.NewMiddleware("character_api"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Health probes and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/api/user", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Authenticated routes ---
	api := e.Group("/api", middleware.Auth(deps.JWTSecret))
	api.POST("/refresh", authHandler.Refresh)

	characterHandler := handler.NewCharacterHandler(deps.Characters)
	api.GET("/character", characterHandler.List)
	api.POST("/character", characterHandler.Create)
	api.GET("/character/:id", characterHandler.Get)
	api.PATCH("/character/:id", characterHandler.Update)
	api.DELETE("/character/:id", characterHandler.Delete)

	meritHandler := handler.NewMeritHandler(deps.Merits)
	api.GET("/merit", meritHandler.List)
	api.POST("/merit", meritHandler.Create)
	api.GET("/merit/:id", meritHandler.Get)
	api.PUT("/merit/:id", meritHandler.Replace)
	api.DELETE("/merit/:id", meritHandler.Delete)

	return e
}

// requestLogger writes one zerolog entry per request, levelled by status.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			var evt *zerolog.Event
			switch {
			case v.Status >= http.StatusInternalServerError:
				evt = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				evt = log.Warn()
			default:
				evt = log.Info()
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
