package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

type certificateRepository struct {
	db *database.DB
}

func NewCertificateRepository(db *database.DB) certificate.CertificateRepository {
	return &certificateRepository{db: db}
}

// Create implements certificate.CertificateRepository.
func (r *certificateRepository) Create(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	query := `
		INSERT INTO certificates (id, username, date, start_time, end_time, total_hours, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING registered_at
	`

	c.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query,
		c.ID, c.Username, c.Date, c.Start, c.End, c.TotalHours, c.Reason, c.Status,
	).Scan(&c.RegisteredAt)
	if err != nil {
		return certificate.Certificate{}, fmt.Errorf("failed to create certificate: %w", err)
	}

	return c, nil
}

// SumApprovedHoursByDay implements certificate.CertificateRepository.
func (r *certificateRepository) SumApprovedHoursByDay(ctx context.Context, username string, date time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_hours), 0)
		FROM certificates
		WHERE username = $1
		  AND date = $2
		  AND status = $3
	`

	var total float64
	err := r.db.QueryRow(ctx, query, username, date, certificate.StatusApproved).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum certificate hours: %w", err)
	}

	return total, nil
}

// ListApprovedRange implements certificate.CertificateRepository.
func (r *certificateRepository) ListApprovedRange(ctx context.Context, username string, start, end time.Time) ([]certificate.Certificate, error) {
	query := `
		SELECT id, username, date, start_time, end_time, total_hours, reason,
			   status, registered_at, decided_by, decided_at
		FROM certificates
		WHERE username = $1
		  AND status = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, username, certificate.StatusApproved, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var certs []certificate.Certificate
	for rows.Next() {
		var c certificate.Certificate
		err := rows.Scan(
			&c.ID, &c.Username, &c.Date, &c.Start, &c.End, &c.TotalHours,
			&c.Reason, &c.Status, &c.RegisteredAt, &c.DecidedBy, &c.DecidedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certs = append(certs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificates: %w", err)
	}

	return certs, nil
}

// Decide implements certificate.CertificateRepository.
func (r *certificateRepository) Decide(ctx context.Context, id string, status certificate.Status, decidedBy string) error {
	query := `
		UPDATE certificates
		SET status = $2, decided_by = $3, decided_at = NOW()
		WHERE id = $1
		  AND status = $4
	`

	tag, err := r.db.Exec(ctx, query, id, status, decidedBy, certificate.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to decide certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrCertificateNotFound
	}

	return nil
}
