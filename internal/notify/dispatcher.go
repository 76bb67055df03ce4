package notify

import (
	"context"
	"encoding/json"

	"mobile-mechanic/internal/data/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// Notifier is what the services see: fire-and-forget event publication.
// Implementations must never let a delivery failure reach the caller.
type Notifier interface {
	BookingCreated(booking *entity.Booking)
	QuoteRequested(quote *entity.Quote)
}

// Dispatcher decouples request handling from mail-transport latency: the
// services publish, a subscriber goroutine sends mail. Delivery failures are
// logged and swallowed; a persisted record is never rolled back over email.
type Dispatcher struct {
	pubSub *gochannel.GoChannel
	mailer Mailer
	log    *zap.Logger
}

func NewDispatcher(mailer Mailer, log *zap.Logger) *Dispatcher {
	l := log.With(zap.String("component", "notify"))
	return &Dispatcher{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, zapAdapter{log: l}),
		mailer: mailer,
		log:    l,
	}
}

// Start subscribes to both topics and consumes them until ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) error {
	bookings, err := d.pubSub.Subscribe(ctx, TopicBookingCreated)
	if err != nil {
		return err
	}
	quotes, err := d.pubSub.Subscribe(ctx, TopicQuoteRequested)
	if err != nil {
		return err
	}

	go d.consumeBookings(bookings)
	go d.consumeQuotes(quotes)

	return nil
}

func (d *Dispatcher) Close() error {
	return d.pubSub.Close()
}

func (d *Dispatcher) BookingCreated(booking *entity.Booking) {
	d.publish(TopicBookingCreated, BookingCreated{Booking: *booking})
}

func (d *Dispatcher) QuoteRequested(quote *entity.Quote) {
	d.publish(TopicQuoteRequested, QuoteRequested{Quote: *quote})
}

func (d *Dispatcher) publish(topic string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		d.log.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := d.pubSub.Publish(topic, msg); err != nil {
		d.log.Error("Failed to publish event", zap.Error(err), zap.String("topic", topic))
	}
}

func (d *Dispatcher) consumeBookings(msgs <-chan *message.Message) {
	for msg := range msgs {
		var event BookingCreated
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			d.log.Error("Failed to decode booking event", zap.Error(err))
			msg.Ack()
			continue
		}

		subject, body := formatBooking(&event.Booking)
		if err := d.mailer.Send(subject, body); err != nil {
			// Best effort: the booking is already confirmed to the caller.
			d.log.Error("Booking notification failed",
				zap.Error(err),
				zap.String("booking_id", event.Booking.ID),
			)
		} else {
			d.log.Info("Booking notification sent", zap.String("booking_id", event.Booking.ID))
		}
		msg.Ack()
	}
}

func (d *Dispatcher) consumeQuotes(msgs <-chan *message.Message) {
	for msg := range msgs {
		var event QuoteRequested
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			d.log.Error("Failed to decode quote event", zap.Error(err))
			msg.Ack()
			continue
		}

		subject, body := formatQuote(&event.Quote)
		if err := d.mailer.Send(subject, body); err != nil {
			d.log.Error("Quote notification failed",
				zap.Error(err),
				zap.String("quote_id", event.Quote.ID),
			)
		} else {
			d.log.Info("Quote notification sent", zap.String("quote_id", event.Quote.ID))
		}
		msg.Ack()
	}
}

// zapAdapter bridges watermill's logger to zap.
type zapAdapter struct {
	log *zap.Logger
}

func (a zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(zapFields(fields), zap.Error(err))...)
}

func (a zapAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, zapFields(fields)...)
}

func (a zapAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, zapFields(fields)...)
}

func (a zapAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, zapFields(fields)...)
}

func (a zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return zapAdapter{log: a.log.With(zapFields(fields)...)}
}

func zapFields(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
