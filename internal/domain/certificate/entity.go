package certificate

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Certificate is an authorized partial-day absence (atestado de horas).
// Approved certificates always debit the time bank.
type Certificate struct {
	ID           string
	Username     string
	Date         time.Time
	Start        string // "HH:MM" or "HH:MM:SS"
	End          string
	TotalHours   float64
	Reason       *string
	Status       Status
	RegisteredAt time.Time
	DecidedBy    *string
	DecidedAt    *time.Time
}
