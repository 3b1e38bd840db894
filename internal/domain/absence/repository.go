package absence

import (
	"context"
	"time"
)

// AbsenceRepository defines data access for absence spans.
type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)

	// ListUndocumentedOverlapping retrieves absences flagged as having no
	// supporting document whose span overlaps the inclusive range. These
	// are the only absences the time bank debits.
	ListUndocumentedOverlapping(ctx context.Context, username string, start, end time.Time) ([]Absence, error)
}
