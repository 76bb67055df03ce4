package repository

import (
	"context"
	"sync"

	"mobile-mechanic/internal/data/entity"
)

// memoryBookingRepository keeps bookings in insertion order. The single lock
// makes the slot check atomic with the append, so two concurrent requests for
// the same date and time cannot both succeed.
type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []*entity.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.Status == entity.BookingStatusConfirmed {
		for _, b := range r.bookings {
			if b.Status == entity.BookingStatusConfirmed &&
				b.PreferredDate == booking.PreferredDate &&
				b.PreferredTime == booking.PreferredTime {
				return ErrSlotTaken
			}
		}
	}

	copied := *booking
	r.bookings = append(r.bookings, &copied)
	return nil
}

func (r *memoryBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Booking, len(r.bookings))
	for i, b := range r.bookings {
		copied := *b
		out[i] = &copied
	}
	return out, nil
}

func (r *memoryBookingRepository) FindByDateAndStatus(ctx context.Context, date string, status entity.BookingStatus) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.PreferredDate == date && b.Status == status {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memoryQuoteRepository struct {
	mu     sync.RWMutex
	quotes []*entity.Quote
}

func NewMemoryQuoteRepository() QuoteRepository {
	return &memoryQuoteRepository{}
}

func (r *memoryQuoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *quote
	r.quotes = append(r.quotes, &copied)
	return nil
}

func (r *memoryQuoteRepository) FindAll(ctx context.Context) ([]*entity.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Quote, len(r.quotes))
	for i, q := range r.quotes {
		copied := *q
		out[i] = &copied
	}
	return out, nil
}
