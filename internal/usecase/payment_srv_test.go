package usecase

import (
	"context"
	"testing"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepositIntent_Success(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _, _ := newTestService(gateway)
	ctx := context.Background()

	resp, err := svc.Payment.CreateDepositIntent(ctx, bookingRequest())
	require.NoError(t, err)

	assert.Equal(t, "pi_test_secret", resp.ClientSecret)
	assert.Equal(t, 25, resp.Amount)

	require.Len(t, gateway.calls, 1)
	assert.Equal(t, entity.ServiceOilChange, gateway.calls[0].Service)
	assert.Equal(t, "Jo Lee", gateway.calls[0].CustomerName)
	assert.Equal(t, "jo@example.com", gateway.calls[0].CustomerEmail)
}

func TestCreateDepositIntent_EmergencyDeposit(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	req := bookingRequest()
	req.Service = "emergency"

	resp, err := svc.Payment.CreateDepositIntent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Amount)
}

func TestCreateDepositIntent_UnknownService(t *testing.T) {
	svc, _, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	req := bookingRequest()
	req.Service = "welding"

	_, err := svc.Payment.CreateDepositIntent(ctx, req)
	assert.ErrorIs(t, err, entity.ErrUnknownService)
}

func TestCreateDepositIntent_GatewayFailure(t *testing.T) {
	gateway := &fakeGateway{err: payments.ErrPaymentSetup}
	svc, _, _ := newTestService(gateway)
	ctx := context.Background()

	_, err := svc.Payment.CreateDepositIntent(ctx, bookingRequest())
	assert.ErrorIs(t, err, payments.ErrPaymentSetup)
}

func TestCreateDepositIntent_NoBookingRecord(t *testing.T) {
	svc, repo, _ := newTestService(&fakeGateway{})
	ctx := context.Background()

	_, err := svc.Payment.CreateDepositIntent(ctx, bookingRequest())
	require.NoError(t, err)

	bookings, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
