package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/data/repository"
	"mobile-mechanic/internal/dto/response"

	"go.uber.org/zap"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// AllSlots are the ten hourly windows bookable on any date.
var AllSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

type AvailabilityService interface {
	// GetAvailability returns the bookable slots on a date: the fixed slot
	// list minus those held by confirmed bookings.
	GetAvailability(ctx context.Context, date string) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetAvailability(ctx context.Context, date string) (*response.AvailabilityResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	booked, err := s.repo.Booking.FindByDateAndStatus(ctx, date, entity.BookingStatusConfirmed)
	if err != nil {
		s.log.Error("Failed to load bookings for date",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("load bookings for %s: %w", date, err)
	}

	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b.PreferredTime] = true
	}

	available := make([]string, 0, len(AllSlots))
	for _, slot := range AllSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return &response.AvailabilityResponse{
		Date:           date,
		AvailableSlots: available,
		BookedSlots:    len(booked),
	}, nil
}
