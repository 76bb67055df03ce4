package repository

import (
	"context"
	"fmt"

	"mobile-mechanic/internal/data/entity"
	"mobile-mechanic/pkg/database"

	"go.uber.org/zap"
)

type postgresQuoteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresQuoteRepository(db database.PgxIface, log *zap.Logger) QuoteRepository {
	return &postgresQuoteRepository{
		db:  db,
		log: log.With(zap.String("repository", "quote")),
	}
}

func (r *postgresQuoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, name, phone, email, vehicle, service, location,
			urgency, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		quote.ID,
		quote.Name,
		quote.Phone,
		quote.Email,
		quote.Vehicle,
		quote.Service,
		quote.Location,
		quote.Urgency,
		quote.Description,
		quote.Status,
		quote.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create quote",
			zap.Error(err),
			zap.String("quote_id", quote.ID),
		)
		return fmt.Errorf("create quote %s: %w", quote.ID, err)
	}

	return nil
}

func (r *postgresQuoteRepository) FindAll(ctx context.Context) ([]*entity.Quote, error) {
	query := `
		SELECT id, name, phone, email, vehicle, service, location,
			urgency, description, status, created_at
		FROM quotes
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list quotes", zap.Error(err))
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		err := rows.Scan(
			&q.ID, &q.Name, &q.Phone, &q.Email, &q.Vehicle, &q.Service,
			&q.Location, &q.Urgency, &q.Description, &q.Status, &q.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan quote row", zap.Error(err))
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		quotes = append(quotes, &q)
	}

	return quotes, nil
}
