package wire

import (
	"mobile-mechanic/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, handler *adaptor.Handler) {
	// POST /api/create-payment-intent - Authorize the deposit charge
	r.Post("/api/create-payment-intent", handler.Payment.CreatePaymentIntent)

	// POST /api/bookings - Create booking after payment confirmation
	r.Post("/api/bookings", handler.Booking.CreateBooking)

	// GET /api/availability/{date} - Open slots on a date
	r.Get("/api/availability/{date}", handler.Availability.GetAvailability)
}
