package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/dto/request"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/internal/usecase"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

type QuoteHandler struct {
	service usecase.QuoteService
	log     *zap.Logger
}

func NewQuoteHandler(service usecase.QuoteService, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		log:     log.With(zap.String("handler", "quote")),
	}
}

// CreateQuote handles POST /api/quotes
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req request.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	req.Normalize()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	quote, err := h.service.CreateQuote(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownService) {
			h.log.Warn("Create quote rejected", zap.Error(err))
			utils.ResponseBadRequest(w, "Invalid service type")
			return
		}
		h.log.Error("Failed to create quote", zap.Error(err))
		utils.ResponseInternalError(w, "Quote submission failed")
		return
	}

	utils.ResponseCreated(w, response.CreateQuoteResponse{
		Success: true,
		Quote:   *quote,
		Message: "Quote request submitted successfully",
	})
}
