package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/schedule"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

// Weekdays are stored as integers matching time.Weekday (0=Sunday).
type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// ListWeek implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListWeek(ctx context.Context, username string) ([]schedule.WeekdayRow, error) {
	query := `
		SELECT id, username, weekday, works, start_time, end_time, lunch_minutes,
			   created_at, updated_at
		FROM weekday_schedules
		WHERE username = $1
		ORDER BY weekday
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekday schedules: %w", err)
	}
	defer rows.Close()

	var result []schedule.WeekdayRow
	for rows.Next() {
		var row schedule.WeekdayRow
		var weekday int
		err := rows.Scan(
			&row.ID, &row.Username, &weekday, &row.Works, &row.Start, &row.End,
			&row.LunchMinutes, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekday schedule: %w", err)
		}
		row.Weekday = time.Weekday(weekday)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weekday schedules: %w", err)
	}

	return result, nil
}

// SaveDay implements schedule.ScheduleRepository.
func (r *scheduleRepository) SaveDay(ctx context.Context, row schedule.WeekdayRow) error {
	query := `
		INSERT INTO weekday_schedules (id, username, weekday, works, start_time, end_time, lunch_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username, weekday) DO UPDATE SET
			works = EXCLUDED.works,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			lunch_minutes = EXCLUDED.lunch_minutes,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		uuid.NewString(), row.Username, int(row.Weekday), row.Works,
		row.Start, row.End, row.LunchMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to save weekday schedule: %w", err)
	}

	return nil
}
