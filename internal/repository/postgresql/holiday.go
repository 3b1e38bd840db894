package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/holiday"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// IsHoliday implements holiday.HolidayRepository.
func (r *holidayRepository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM holidays
			WHERE date = $1
			  AND active = TRUE
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	query := `
		SELECT id, date, name, kind, active, created_at
		FROM holidays
		WHERE active = TRUE
		  AND date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Kind, &h.Active, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	query := `
		INSERT INTO holidays (id, date, name, kind, active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING created_at
	`

	h.ID = uuid.NewString()
	h.Active = true
	err := r.db.QueryRow(ctx, query, h.ID, h.Date, h.Name, h.Kind).Scan(&h.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}
