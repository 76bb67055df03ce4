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

type BookingService interface {
	// CreateBooking persists a confirmed booking and queues the operator
	// notification. The caller submits it only after the deposit charge was
	// confirmed client-side.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// ListBookings returns every booking in insertion order (admin).
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	service := entity.ServiceType(req.Service)

	pricing, err := entity.LookupPrice(service)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:            utils.GenerateBookingID(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Vehicle:       req.Vehicle,
		Service:       service,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Urgency:       req.Urgency,
		Description:   req.Description,
		Status:        entity.BookingStatusConfirmed,
		DepositPaid:   true,
		DepositAmount: pricing.Deposit,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if err == repository.ErrSlotTaken {
			s.log.Warn("Slot already booked",
				zap.String("date", req.PreferredDate),
				zap.String("time", req.PreferredTime),
			)
			return nil, err
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("service", string(booking.Service)),
		zap.String("date", booking.PreferredDate),
		zap.String("time", booking.PreferredTime),
		zap.Int("deposit", booking.DepositAmount),
	)

	// Best effort: the response never waits on or fails with the mail path.
	s.notifier.BookingCreated(booking)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.BookingToResponse(b)
	}
	return out, nil
}
