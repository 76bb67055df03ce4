package usecase

import (
	"context"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/dto/request"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/internal/payments"

	"go.uber.org/zap"
)

type PaymentService interface {
	// CreateDepositIntent authorizes the service deposit at the processor and
	// returns the client confirmation token. No booking record is created.
	CreateDepositIntent(ctx context.Context, req *request.CreateBookingRequest) (*response.PaymentIntentResponse, error)
}

type paymentService struct {
	gateway payments.Gateway
	log     *zap.Logger
}

func NewPaymentService(gateway payments.Gateway, log *zap.Logger) PaymentService {
	return &paymentService{
		gateway: gateway,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreateDepositIntent(ctx context.Context, req *request.CreateBookingRequest) (*response.PaymentIntentResponse, error) {
	intent, err := s.gateway.CreateDepositIntent(ctx, payments.IntentRequest{
		Service:       entity.ServiceType(req.Service),
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Deposit intent created",
		zap.String("service", req.Service),
		zap.Int("amount", intent.Amount),
	)

	return &response.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
	}, nil
}
