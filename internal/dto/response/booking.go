package response

import (
	"time"

	"mobile-mechanic/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email,omitempty"`
	Vehicle       string               `json:"vehicle"`
	Service       entity.ServiceType   `json:"service"`
	Location      string               `json:"location"`
	PreferredDate string               `json:"preferredDate"`
	PreferredTime string               `json:"preferredTime"`
	Urgency       string               `json:"urgency,omitempty"`
	Description   string               `json:"description,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	DepositPaid   bool                 `json:"depositPaid"`
	DepositAmount int                  `json:"depositAmount"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// CreateBookingResponse is the 201 envelope for POST /api/bookings.
type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
	Message string          `json:"message"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		Vehicle:       b.Vehicle,
		Service:       b.Service,
		Location:      b.Location,
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		Urgency:       b.Urgency,
		Description:   b.Description,
		Status:        b.Status,
		DepositPaid:   b.DepositPaid,
		DepositAmount: b.DepositAmount,
		CreatedAt:     b.CreatedAt,
	}
}
