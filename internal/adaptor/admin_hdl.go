package adaptor

import (
	"net/http"

	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/internal/usecase"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	bookings usecase.BookingService
	quotes   usecase.QuoteService
	log      *zap.Logger
}

func NewAdminHandler(bookings usecase.BookingService, quotes usecase.QuoteService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		bookings: bookings,
		quotes:   quotes,
		log:      log.With(zap.String("handler", "admin")),
	}
}

// ListBookings handles GET /api/admin/bookings (token protected)
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListBookings(r.Context())
	if err != nil {
		h.log.Error("Failed to list bookings", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	if bookings == nil {
		bookings = []response.BookingResponse{}
	}
	utils.ResponseOK(w, response.AdminBookingsResponse{Bookings: bookings})
}

// ListQuotes handles GET /api/admin/quotes (token protected)
func (h *AdminHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quotes.ListQuotes(r.Context())
	if err != nil {
		h.log.Error("Failed to list quotes", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	if quotes == nil {
		quotes = []response.QuoteResponse{}
	}
	utils.ResponseOK(w, response.AdminQuotesResponse{Quotes: quotes})
}
