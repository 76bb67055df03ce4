package adaptor

import (
	"errors"
	"net/http"

	"mobile-mechanic/internal/usecase"
	"mobile-mechanic/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/availability/{date}
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	availability, err := h.service.GetAvailability(r.Context(), date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			utils.ResponseBadRequest(w, "Invalid date, expected YYYY-MM-DD")
			return
		}
		h.log.Error("Failed to get availability", zap.Error(err), zap.String("date", date))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseOK(w, availability)
}
