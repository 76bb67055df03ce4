package usecase

import (
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/notify"
	"mobile-mechanic/internal/payments"

	"go.uber.org/zap"
)

type Service struct {
	Booking      BookingService
	Quote        QuoteService
	Payment      PaymentService
	Availability AvailabilityService
}

func NewService(repo *repository.Repository, gateway payments.Gateway, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		Booking:      NewBookingService(repo, notifier, log),
		Quote:        NewQuoteService(repo, notifier, log),
		Payment:      NewPaymentService(gateway, log),
		Availability: NewAvailabilityService(repo, log),
	}
}
