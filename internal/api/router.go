package api

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/futsalhub/booking-system/internal/api/handler"
	"github.com/futsalhub/booking-system/internal/api/middleware"
	"github.com/futsalhub/booking-system/internal/app"
	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/core/ports"
	_ "github.com/futsalhub/booking-system/internal/docs"
)

// Services are the use cases the HTTP shell drives.
type Services struct {
	Identities ports.IdentityService
	Sessions   ports.SessionService
	Catalog    ports.CatalogService
	Ledger     ports.LedgerService

	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.Check
}

// ServicesFrom exposes a Container's services to the router.
func ServicesFrom(c *app.Container) Services {
	s := Services{
		Identities: c.Identities,
		Sessions:   c.Sessions,
		Catalog:    c.Catalog,
		Ledger:     c.Ledger,
		Checks:     map[string]handler.Check{},
	}
	if c.Redis != nil {
		s.Checks["redis"] = func(ctx context.Context) error {
			return c.Redis.Ping(ctx).Err()
		}
	}
	return s
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(s Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(requestLogger(log)) // inside Metrics so it sees the handler's error

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(s.Identities, s.Sessions)
	facilityHandler := handler.NewFacilityHandler(s.Catalog, s.Identities)
	reservationHandler := handler.NewReservationHandler(s.Ledger, s.Catalog, s.Identities)
	dashboardHandler := handler.NewDashboardHandler(s.Catalog, s.Ledger, s.Identities)
	authenticated := middleware.Auth(s.Sessions)
	ownerOnly := middleware.RBAC(domain.RoleOwner)
	regularOnly := middleware.RBAC(domain.RoleRegular)

	v1 := e.Group("/v1")

	// --- Auth routes ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout, authenticated)

	// --- Catalog routes ---
	v1.GET("/facilities", facilityHandler.List)
	v1.GET("/facilities/:id", facilityHandler.Get)
	v1.POST("/facilities", facilityHandler.Create, authenticated, ownerOnly)
	v1.GET("/owners/me/facilities", facilityHandler.ListMine, authenticated, ownerOnly)

	// --- Ledger routes ---
	v1.POST("/reservations", reservationHandler.Create, authenticated, regularOnly)
	v1.GET("/reservations/me", reservationHandler.ListMine, authenticated, regularOnly)

	v1.GET("/me/dashboard", dashboardHandler.Show, authenticated)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(s.Checks).Readiness)

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
