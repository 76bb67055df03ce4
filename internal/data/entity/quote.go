package entity

import "time"

type QuoteStatus string

const (
	QuoteStatusPending QuoteStatus = "pending"
)

// Quote is a non-binding price estimate request. No payment or slot attached.
type Quote struct {
	ID          string      `db:"id"`
	Name        string      `db:"name"`
	Phone       string      `db:"phone"`
	Email       string      `db:"email"`
	Vehicle     string      `db:"vehicle"`
	Service     ServiceType `db:"service"`
	Location    string      `db:"location"`
	Urgency     string      `db:"urgency"`
	Description string      `db:"description"`
	Status      QuoteStatus `db:"status"`
	CreatedAt   time.Time   `db:"created_at"`
}
