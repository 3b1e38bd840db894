package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/punch"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/clock"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

// Punch timestamps are stored as naive local wall-clock text, the format
// legacy clients wrote. Scanning parses them back; rows that no longer
// parse come out with a zero Timestamp and their Raw text intact.
type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	query := `
		INSERT INTO punches (id, username, kind, stamp)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	p.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query, p.ID, p.Username, p.Kind, p.Raw).Scan(&p.CreatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ListDay implements punch.PunchRepository.
func (r *punchRepository) ListDay(ctx context.Context, username string, date time.Time) ([]punch.Punch, error) {
	query := `
		SELECT id, username, kind, stamp, created_at
		FROM punches
		WHERE username = $1
		  AND left(stamp, 10) = $2
		ORDER BY stamp
	`

	return r.queryPunches(ctx, query, username, clock.DateOnly(date))
}

// ListRange implements punch.PunchRepository.
func (r *punchRepository) ListRange(ctx context.Context, username string, start, end time.Time) ([]punch.Punch, error) {
	query := `
		SELECT id, username, kind, stamp, created_at
		FROM punches
		WHERE username = $1
		  AND left(stamp, 10) BETWEEN $2 AND $3
		ORDER BY stamp
	`

	return r.queryPunches(ctx, query, username, clock.DateOnly(start), clock.DateOnly(end))
}

// CountKindsByDay implements punch.PunchRepository.
func (r *punchRepository) CountKindsByDay(ctx context.Context, username string, date time.Time) (map[punch.Kind]int, error) {
	query := `
		SELECT kind, COUNT(*)
		FROM punches
		WHERE username = $1
		  AND left(stamp, 10) = $2
		GROUP BY kind
	`

	rows, err := r.db.Query(ctx, query, username, clock.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to count punches: %w", err)
	}
	defer rows.Close()

	counts := make(map[punch.Kind]int)
	for rows.Next() {
		var kind punch.Kind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan punch count: %w", err)
		}
		counts[kind] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch counts: %w", err)
	}

	return counts, nil
}

func (r *punchRepository) queryPunches(ctx context.Context, query string, args ...any) ([]punch.Punch, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(&p.ID, &p.Username, &p.Kind, &p.Raw, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		if ts, perr := clock.ParseStamp(p.Raw); perr == nil {
			p.Timestamp = ts
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}
