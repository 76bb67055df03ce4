package usecase

import (
	"context"
	"fmt"
	"time"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/dto/request"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/internal/notify"
	"mobile-mechanic/pkg/utils"

	"go.uber.org/zap"
)

type QuoteService interface {
	CreateQuote(ctx context.Context, req *request.CreateQuoteRequest) (*response.QuoteResponse, error)
	ListQuotes(ctx context.Context) ([]response.QuoteResponse, error)
}

type quoteService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewQuoteService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) QuoteService {
	return &quoteService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "quote")),
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, req *request.CreateQuoteRequest) (*response.QuoteResponse, error) {
	service := entity.ServiceType(req.Service)

	if _, err := entity.LookupPrice(service); err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		ID:          utils.GenerateQuoteID(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Vehicle:     req.Vehicle,
		Service:     service,
		Location:    req.Location,
		Urgency:     req.Urgency,
		Description: req.Description,
		Status:      entity.QuoteStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Quote.Create(ctx, quote); err != nil {
		s.log.Error("Failed to create quote",
			zap.Error(err),
			zap.String("quote_id", quote.ID),
		)
		return nil, fmt.Errorf("create quote: %w", err)
	}

	s.log.Info("Quote created",
		zap.String("quote_id", quote.ID),
		zap.String("service", string(quote.Service)),
	)

	s.notifier.QuoteRequested(quote)

	resp := response.QuoteToResponse(quote)
	return &resp, nil
}

func (s *quoteService) ListQuotes(ctx context.Context) ([]response.QuoteResponse, error) {
	quotes, err := s.repo.Quote.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list quotes", zap.Error(err))
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	out := make([]response.QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = response.QuoteToResponse(q)
	}
	return out, nil
}
