package wire

import (
	"mobile-mechanic/internal/adaptor"
	"mobile-mechanic/pkg/middleware"
	"mobile-mechanic/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, handler *adaptor.Handler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminToken(config.Admin.TokenHash, log))

		// GET /api/admin/bookings - Full booking dump
		r.Get("/bookings", handler.Admin.ListBookings)

		// GET /api/admin/quotes - Full quote dump
		r.Get("/quotes", handler.Admin.ListQuotes)
	})
}
