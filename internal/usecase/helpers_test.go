package usecase

import (
	"context"
	"sync"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/dto/request"
	"mobile-mechanic/internal/payments"

	"go.uber.org/zap"
)

type fakeNotifier struct {
	mu       sync.Mutex
	bookings []entity.Booking
	quotes   []entity.Quote
}

func (f *fakeNotifier) BookingCreated(booking *entity.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *booking)
}

func (f *fakeNotifier) QuoteRequested(quote *entity.Quote) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes = append(f.quotes, *quote)
}

type fakeGateway struct {
	err   error
	calls []payments.IntentRequest
}

func (f *fakeGateway) CreateDepositIntent(ctx context.Context, req payments.IntentRequest) (*payments.Intent, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	pricing, err := entity.LookupPrice(req.Service)
	if err != nil {
		return nil, err
	}
	return &payments.Intent{ClientSecret: "pi_test_secret", Amount: pricing.Deposit}, nil
}

func newTestService(gateway payments.Gateway) (*Service, *repository.Repository, *fakeNotifier) {
	repo := repository.NewMemoryRepository()
	notifier := &fakeNotifier{}
	return NewService(repo, gateway, notifier, zap.NewNop()), repo, notifier
}

func bookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Name:          "Jo Lee",
		Phone:         "5551234567",
		Email:         "jo@example.com",
		Vehicle:       "Civic",
		Service:       "oil-change",
		Location:      "123 Main St, City",
		PreferredDate: "2026-09-15",
		PreferredTime: "09:00",
	}
}
