package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/dto/request"
	"mobile-mechanic/internal/usecase"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentIntent handles POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}
	req.Normalize()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	intent, err := h.service.CreateDepositIntent(r.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownService) {
			h.log.Warn("Payment intent rejected", zap.Error(err))
			utils.ResponseBadRequest(w, "Invalid service type")
			return
		}
		h.log.Error("Payment intent creation failed", zap.Error(err))
		utils.ResponseInternalError(w, "Payment processing failed. Please try again or call us to book directly.")
		return
	}

	utils.ResponseOK(w, intent)
}
