package repository

import (
	"context"
	"errors"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/pkg/database"

	"go.uber.org/zap"
)

// ErrSlotTaken is returned when a confirmed booking already holds the
// requested date and time.
var ErrSlotTaken = errors.New("time slot already booked")

type BookingRepository interface {
	// Create appends the booking. The slot guard is atomic with the insert:
	// for a confirmed booking, Create fails with ErrSlotTaken when another
	// confirmed booking holds the same date and time.
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByDateAndStatus(ctx context.Context, date string, status entity.BookingStatus) ([]*entity.Booking, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	FindAll(ctx context.Context) ([]*entity.Quote, error)
}

type Repository struct {
	Booking BookingRepository
	Quote   QuoteRepository
}

// NewMemoryRepository is the default store: append-only in-process slices.
// All records vanish on restart.
func NewMemoryRepository() *Repository {
	return &Repository{
		Booking: NewMemoryBookingRepository(),
		Quote:   NewMemoryQuoteRepository(),
	}
}

// NewPostgresRepository wires the durable store behind the same interfaces.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewPostgresBookingRepository(db, log),
		Quote:   NewPostgresQuoteRepository(db, log),
	}
}
