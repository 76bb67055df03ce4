package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/dto/request"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/internal/usecase"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	req.Normalize()

	// Report every violated field in one response
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, response.CreateBookingResponse{
		Success: true,
		Booking: *booking,
		Message: "Booking confirmed successfully",
	})
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnknownService):
		h.log.Warn("Create booking rejected", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid service type")

	case errors.Is(err, repository.ErrSlotTaken):
		h.log.Warn("Create booking rejected", zap.Error(err))
		utils.ResponseConflict(w, "Requested time slot is no longer available")

	default:
		h.log.Error("Failed to create booking", zap.Error(err))
		utils.ResponseInternalError(w, "Booking creation failed")
	}
}
