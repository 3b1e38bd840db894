package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/absence"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepository) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	query := `
		INSERT INTO absences (id, username, start_date, end_date, kind, reason, no_document, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING registered_at
	`

	a.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query,
		a.ID, a.Username, a.StartDate, a.EndDate, a.Kind, a.Reason, a.NoDocument, a.Status,
	).Scan(&a.RegisteredAt)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return a, nil
}

// ListUndocumentedOverlapping implements absence.AbsenceRepository.
func (r *absenceRepository) ListUndocumentedOverlapping(ctx context.Context, username string, start, end time.Time) ([]absence.Absence, error) {
	query := `
		SELECT id, username, start_date, end_date, kind, reason, no_document, status, registered_at
		FROM absences
		WHERE username = $1
		  AND no_document = TRUE
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, username, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		err := rows.Scan(
			&a.ID, &a.Username, &a.StartDate, &a.EndDate, &a.Kind,
			&a.Reason, &a.NoDocument, &a.Status, &a.RegisteredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return absences, nil
}
