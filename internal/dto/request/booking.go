package request

import "strings"

// CreateBookingRequest is the payload for POST /api/bookings and for
// POST /api/create-payment-intent, which takes the same fields.
type CreateBookingRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Phone         string `json:"phone" validate:"required,phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Vehicle       string `json:"vehicle" validate:"required,min=3"`
	Service       string `json:"service" validate:"required,oneof=oil-change battery brakes engine cooling emergency other"`
	Location      string `json:"location" validate:"required,min=5"`
	PreferredDate string `json:"preferredDate" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferredTime" validate:"required,datetime=15:04"`
	Urgency       string `json:"urgency"`
	Description   string `json:"description"`
}

// Normalize trims surrounding whitespace before validation, so a field of
// spaces does not pass the required check.
func (r *CreateBookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Vehicle = strings.TrimSpace(r.Vehicle)
	r.Service = strings.TrimSpace(r.Service)
	r.Location = strings.TrimSpace(r.Location)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.PreferredTime = strings.TrimSpace(r.PreferredTime)
	r.Urgency = strings.TrimSpace(r.Urgency)
	r.Description = strings.TrimSpace(r.Description)
}
