package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/overtime"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, username, date, start_time, end_time, justification, approver,
	status, requested_at, decided_by, decided_at, notes
`

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	query := `
		INSERT INTO overtime_requests (
			id, username, date, start_time, end_time, justification, approver, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING requested_at
	`

	req.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query,
		req.ID, req.Username, req.Date, req.Start, req.End,
		req.Justification, req.Approver, req.Status,
	).Scan(&req.RequestedAt)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetPending implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetPending(ctx context.Context, id string) (overtime.Request, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE id = $1
		  AND status = $2
	`

	req, err := r.scanOne(r.db.QueryRow(ctx, query, id, overtime.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, overtime.ErrRequestNotFound
		}
		return overtime.Request{}, fmt.Errorf("failed to get pending overtime request: %w", err)
	}

	return req, nil
}

// ListByUser implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByUser(ctx context.Context, username string, status overtime.Status) ([]overtime.Request, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE username = $1
		  AND ($2 = '' OR status = $2)
		ORDER BY requested_at DESC
	`

	return r.queryRequests(ctx, query, username, string(status))
}

// ListPendingForApprover implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListPendingForApprover(ctx context.Context, approver string) ([]overtime.Request, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE approver = $1
		  AND status = $2
		ORDER BY requested_at
	`

	return r.queryRequests(ctx, query, approver, overtime.StatusPending)
}

// ListApprovedRange implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListApprovedRange(ctx context.Context, username string, start, end time.Time) ([]overtime.Request, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests
		WHERE username = $1
		  AND status = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	return r.queryRequests(ctx, query, username, overtime.StatusApproved, start, end)
}

// HasPending implements overtime.OvertimeRepository.
func (r *overtimeRepository) HasPending(ctx context.Context, username string, date time.Time) (bool, error) {
	return r.exists(ctx, username, date, overtime.StatusPending)
}

// HasApproved implements overtime.OvertimeRepository.
func (r *overtimeRepository) HasApproved(ctx context.Context, username string, date time.Time) (bool, error) {
	return r.exists(ctx, username, date, overtime.StatusApproved)
}

func (r *overtimeRepository) exists(ctx context.Context, username string, date time.Time, status overtime.Status) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM overtime_requests
			WHERE username = $1
			  AND date = $2
			  AND status = $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username, date, status).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overtime request: %w", err)
	}

	return exists, nil
}

// Decide implements overtime.OvertimeRepository.
func (r *overtimeRepository) Decide(ctx context.Context, id string, status overtime.Status, decidedBy string, notes string) error {
	query := `
		UPDATE overtime_requests
		SET status = $2, decided_by = $3, decided_at = NOW(), notes = NULLIF($4, '')
		WHERE id = $1
		  AND status = $5
	`

	tag, err := r.db.Exec(ctx, query, id, status, decidedBy, notes, overtime.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to decide overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}

	return nil
}

func (r *overtimeRepository) queryRequests(ctx context.Context, query string, args ...any) ([]overtime.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.Request
	for rows.Next() {
		req, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}

	return requests, nil
}

func (r *overtimeRepository) scanOne(row pgx.Row) (overtime.Request, error) {
	var req overtime.Request
	err := row.Scan(
		&req.ID, &req.Username, &req.Date, &req.Start, &req.End,
		&req.Justification, &req.Approver, &req.Status, &req.RequestedAt,
		&req.DecidedBy, &req.DecidedAt, &req.Notes,
	)
	return req, err
}
