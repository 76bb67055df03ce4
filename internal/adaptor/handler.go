package adaptor

import (
	"mobile-mechanic/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking      *BookingHandler
	Quote        *QuoteHandler
	Payment      *PaymentHandler
	Availability *AvailabilityHandler
	Admin        *AdminHandler
	System       *SystemHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:      NewBookingHandler(service.Booking, log),
		Quote:        NewQuoteHandler(service.Quote, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Admin:        NewAdminHandler(service.Booking, service.Quote, log),
		System:       NewSystemHandler(log),
	}
}
