package adaptor

import (
	"net/http"
	"strings"
	"testing"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/internal/dto/response"
	"mobile-mechanic/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuote_Created(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	rec := doJSON(t, router, http.MethodPost, "/api/quotes", quotePayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var body response.CreateQuoteResponse
	decodeBody(t, rec, &body)

	assert.True(t, body.Success)
	assert.Equal(t, "Quote request submitted successfully", body.Message)
	assert.True(t, strings.HasPrefix(body.Quote.ID, "QT"))
	assert.Equal(t, entity.QuoteStatusPending, body.Quote.Status)
	assert.Equal(t, "Jo Lee", body.Quote.Name)
	assert.Empty(t, body.Quote.Email)
}

func TestCreateQuote_ValidationFailure(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	payload := quotePayload()
	payload["phone"] = "123"
	delete(payload, "location")

	rec := doJSON(t, router, http.MethodPost, "/api/quotes", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Errors, "Phone")
	assert.Contains(t, body.Errors, "Location")
	assert.Len(t, body.Errors, 2)
}

func TestCreateQuote_InvalidBody(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	req, rec := newRawRequest(t, http.MethodPost, "/api/quotes", "not json at all")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuote_NoDateRequired(t *testing.T) {
	router := newTestRouter(&fakeGateway{})

	// quote requests carry no scheduling fields
	rec := doJSON(t, router, http.MethodPost, "/api/quotes", quotePayload())
	require.Equal(t, http.StatusCreated, rec.Code)
}
