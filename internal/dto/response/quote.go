package response

import (
	"time"

	"mobile-mechanic/internal/data/entity"
)

type QuoteResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email,omitempty"`
	Vehicle     string             `json:"vehicle"`
	Service     entity.ServiceType `json:"service"`
	Location    string             `json:"location"`
	Urgency     string             `json:"urgency,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      entity.QuoteStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// CreateQuoteResponse is the 201 envelope for POST /api/quotes.
type CreateQuoteResponse struct {
	Success bool          `json:"success"`
	Quote   QuoteResponse `json:"quote"`
	Message string        `json:"message"`
}

func QuoteToResponse(q *entity.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Name:        q.Name,
		Phone:       q.Phone,
		Email:       q.Email,
		Vehicle:     q.Vehicle,
		Service:     q.Service,
		Location:    q.Location,
		Urgency:     q.Urgency,
		Description: q.Description,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
	}
}
