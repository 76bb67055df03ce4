package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking is an appointment secured with a deposit. Records are append-only:
// once created they are never mutated for the lifetime of the process.
type Booking struct {
	ID            string        `db:"id"`
	Name          string        `db:"name"`
	Phone         string        `db:"phone"`
	Email         string        `db:"email"`
	Vehicle       string        `db:"vehicle"`
	Service       ServiceType   `db:"service"`
	Location      string        `db:"location"`
	PreferredDate string        `db:"preferred_date"`
	PreferredTime string        `db:"preferred_time"`
	Urgency       string        `db:"urgency"`
	Description   string        `db:"description"`
	Status        BookingStatus `db:"status"`
	DepositPaid   bool          `db:"deposit_paid"`
	DepositAmount int           `db:"deposit_amount"`
	CreatedAt     time.Time     `db:"created_at"`
}
