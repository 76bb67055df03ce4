package adaptor

import (
	"net/http"
	"testing"
	"time"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.HealthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "OK", body.Status)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}

func TestPricing(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodGet, "/api/pricing", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[entity.ServiceType]entity.PriceQuote
	decodeBody(t, rec, &body)

	require.Len(t, body, 7)
	assert.Equal(t, entity.PriceQuote{Min: 75, Max: 120, Deposit: 25}, body[entity.ServiceOilChange])
	assert.Equal(t, entity.PriceQuote{Min: 150, Max: 400, Deposit: 100}, body[entity.ServiceEmergency])
}

func TestPricing_Stable(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	first := doJSON(t, router, http.MethodGet, "/api/pricing", nil)
	second := doJSON(t, router, http.MethodGet, "/api/pricing", nil)

	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestNotFound(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body utils.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Endpoint not found", body.Error)
}
