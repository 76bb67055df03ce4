package repository

import (
	"context"
	"fmt"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/pkg/database"

	"go.uber.org/zap"
)

type postgresBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &postgresBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *postgresBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	// The conflict target matches the partial unique index on confirmed
	// bookings, so the slot guard runs inside the insert.
	query := `
		INSERT INTO bookings (id, name, phone, email, vehicle, service, location,
			preferred_date, preferred_time, urgency, description, status,
			deposit_paid, deposit_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (preferred_date, preferred_time) WHERE status = 'confirmed'
		DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.Vehicle,
		booking.Service,
		booking.Location,
		booking.PreferredDate,
		booking.PreferredTime,
		booking.Urgency,
		booking.Description,
		booking.Status,
		booking.DepositPaid,
		booking.DepositAmount,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrSlotTaken
	}

	return nil
}

func (r *postgresBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, name, phone, email, vehicle, service, location,
			preferred_date, preferred_time, urgency, description, status,
			deposit_paid, deposit_amount, created_at
		FROM bookings
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		err := rows.Scan(
			&b.ID, &b.Name, &b.Phone, &b.Email, &b.Vehicle, &b.Service,
			&b.Location, &b.PreferredDate, &b.PreferredTime, &b.Urgency,
			&b.Description, &b.Status, &b.DepositPaid, &b.DepositAmount,
			&b.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *postgresBookingRepository) FindByDateAndStatus(ctx context.Context, date string, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT id, name, phone, email, vehicle, service, location,
			preferred_date, preferred_time, urgency, description, status,
			deposit_paid, deposit_amount, created_at
		FROM bookings
		WHERE preferred_date = $1 AND status = $2
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, date, status)
	if err != nil {
		r.log.Error("Failed to find bookings by date",
			zap.Error(err),
			zap.String("date", date),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings for %s: %w", date, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		err := rows.Scan(
			&b.ID, &b.Name, &b.Phone, &b.Email, &b.Vehicle, &b.Service,
			&b.Location, &b.PreferredDate, &b.PreferredTime, &b.Urgency,
			&b.Description, &b.Status, &b.DepositPaid, &b.DepositAmount,
			&b.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}
