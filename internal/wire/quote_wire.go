package wire

import (
	"mobile-mechanic/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireQuote(r chi.Router, handler *adaptor.Handler) {
	// POST /api/quotes - Submit a quote request
	r.Post("/api/quotes", handler.Quote.CreateQuote)
}
