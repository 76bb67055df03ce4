package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/payments"
	"mobile-mechanic/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
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
	err error
}

func (f *fakeGateway) CreateDepositIntent(ctx context.Context, req payments.IntentRequest) (*payments.Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	pricing, err := entity.LookupPrice(req.Service)
	if err != nil {
		return nil, err
	}
	return &payments.Intent{ClientSecret: "pi_test_secret", Amount: pricing.Deposit}, nil
}

// newTestRouter wires the full public route table over the in-memory store.
func newTestRouter(gateway payments.Gateway) *chi.Mux {
	log := zap.NewNop()
	service := usecase.NewService(repository.NewMemoryRepository(), gateway, &fakeNotifier{}, log)
	handler := NewHandler(service, log)

	r := chi.NewRouter()
	r.Post("/api/create-payment-intent", handler.Payment.CreatePaymentIntent)
	r.Post("/api/bookings", handler.Booking.CreateBooking)
	r.Get("/api/availability/{date}", handler.Availability.GetAvailability)
	r.Post("/api/quotes", handler.Quote.CreateQuote)
	r.Get("/api/admin/bookings", handler.Admin.ListBookings)
	r.Get("/api/admin/quotes", handler.Admin.ListQuotes)
	r.Get("/api/health", handler.System.Health)
	r.Get("/api/pricing", handler.System.Pricing)
	r.NotFound(handler.System.NotFound)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newRawRequest(t *testing.T, method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func bookingPayload() map[string]any {
	return map[string]any{
		"name":          "Jo Lee",
		"phone":         "5551234567",
		"email":         "jo@example.com",
		"vehicle":       "Civic",
		"service":       "oil-change",
		"location":      "123 Main St, City",
		"preferredDate": "2026-09-15",
		"preferredTime": "09:00",
	}
}

func quotePayload() map[string]any {
	return map[string]any{
		"name":     "Jo Lee",
		"phone":    "5551234567",
		"vehicle":  "Civic",
		"service":  "oil-change",
		"location": "123 Main St, City",
	}
}
