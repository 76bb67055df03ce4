package notify

import "mobile-mechanic/internal/data/entity"

const (
	TopicBookingCreated = "booking.created"
	TopicQuoteRequested = "quote.requested"
)

// BookingCreated is published after a booking is persisted.
type BookingCreated struct {
	Booking entity.Booking `json:"booking"`
}

// QuoteRequested is published after a quote request is persisted.
type QuoteRequested struct {
	Quote entity.Quote `json:"quote"`
}
