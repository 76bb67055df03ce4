package request

import "strings"

// CreateQuoteRequest is the payload for POST /api/quotes. No scheduling or
// payment fields; a quote is a non-binding estimate request.
type CreateQuoteRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Phone       string `json:"phone" validate:"required,phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Vehicle     string `json:"vehicle" validate:"required,min=3"`
	Service     string `json:"service" validate:"required,oneof=oil-change battery brakes engine cooling emergency other"`
	Location    string `json:"location" validate:"required,min=5"`
	Urgency     string `json:"urgency"`
	Description string `json:"description"`
}

func (r *CreateQuoteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Vehicle = strings.TrimSpace(r.Vehicle)
	r.Service = strings.TrimSpace(r.Service)
	r.Location = strings.TrimSpace(r.Location)
	r.Urgency = strings.TrimSpace(r.Urgency)
	r.Description = strings.TrimSpace(r.Description)
}
