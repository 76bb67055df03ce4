package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailability_EmptyDay(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	resp, err := svc.Availability.GetAvailability(ctx, "2026-09-15")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, AllSlots, resp.AvailableSlots)
	assert.Equal(t, 0, resp.BookedSlots)
}

func TestGetAvailability_SubtractsConfirmed(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	for _, slot := range []string{"09:00", "14:00"} {
		req := bookingRequest()
		req.PreferredTime = slot
		_, err := svc.Booking.CreateBooking(ctx, req)
		require.NoError(t, err)
	}

	resp, err := svc.Availability.GetAvailability(ctx, "2026-09-15")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.BookedSlots)
	assert.Len(t, resp.AvailableSlots, len(AllSlots)-2)
	assert.NotContains(t, resp.AvailableSlots, "09:00")
	assert.NotContains(t, resp.AvailableSlots, "14:00")
	assert.Contains(t, resp.AvailableSlots, "08:00")
}

func TestGetAvailability_OtherDatesUnaffected(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	_, err := svc.Booking.CreateBooking(ctx, bookingRequest())
	require.NoError(t, err)

	resp, err := svc.Availability.GetAvailability(ctx, "2026-09-16")
	require.NoError(t, err)
	assert.Equal(t, AllSlots, resp.AvailableSlots)
	assert.Equal(t, 0, resp.BookedSlots)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	for _, date := range []string{"15-09-2026", "2026/09/15", "not-a-date", ""} {
		_, err := svc.Availability.GetAvailability(ctx, date)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}
