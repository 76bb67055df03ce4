package wire

import (
	"mobile-mechanic/internal/adaptor"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/notify"
	"mobile-mechanic/internal/payments"
	"mobile-mechanic/internal/usecase"
	"mobile-mechanic/pkg/middleware"
	"mobile-mechanic/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(
	repo *repository.Repository,
	gateway payments.Gateway,
	notifier notify.Notifier,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, gateway, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{config.HTTP.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, logger))

	middleware.RegisterMetrics()
	r.Use(middleware.Metrics())

	// Domain routes
	wireBooking(r, handler)
	wireQuote(r, handler)
	wireAdmin(r, handler, config, logger)

	// System routes
	r.Get("/api/health", handler.System.Health)
	r.Get("/api/pricing", handler.System.Pricing)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(handler.System.NotFound)

	return r
}
