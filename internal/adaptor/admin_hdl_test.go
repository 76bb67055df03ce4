package adaptor

import (
	"net/http"
	"testing"

	"mobile-mechanic/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListBookings_EmptyIsArray(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodGet, "/api/admin/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
}

func TestAdminListBookings_ReturnsAll(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	second := bookingPayload()
	second["preferredTime"] = "11:00"
	rec = doJSON(t, router, http.MethodPost, "/api/bookings", second)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.AdminBookingsResponse
	decodeBody(t, rec, &body)
	require.Len(t, body.Bookings, 2)
	assert.Equal(t, "09:00", body.Bookings[0].PreferredTime)
	assert.Equal(t, "11:00", body.Bookings[1].PreferredTime)
}

func TestAdminListQuotes_EmptyIsArray(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodGet, "/api/admin/quotes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{"quotes":[]}`, rec.Body.String())
}

func TestAdminListQuotes_ReturnsAll(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes", quotePayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/quotes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.AdminQuotesResponse
	decodeBody(t, rec, &body)
	require.Len(t, body.Quotes, 1)
	assert.Equal(t, "Jo Lee", body.Quotes[0].Name)
}
