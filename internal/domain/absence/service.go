package absence

import (
	"context"
	"time"
)

// AbsenceService files absence spans. Only spans flagged as having no
// supporting document reach the time bank.
type AbsenceService interface {
	File(ctx context.Context, req FileRequest) (Absence, error)
	ListUndocumented(ctx context.Context, username string, start, end time.Time) ([]Absence, error)
}
