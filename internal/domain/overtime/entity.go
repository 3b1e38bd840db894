package overtime

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a pre-authorized extra-hours window. Only approved requests
// credit the time bank.
type Request struct {
	ID            string
	Username      string
	Date          time.Time
	Start         string // "HH:MM" or "HH:MM:SS"
	End           string // end at or before start means the window crosses midnight
	Justification string
	Approver      string
	Status        Status
	RequestedAt   time.Time
	DecidedBy     *string
	DecidedAt     *time.Time
	Notes         *string
}

// Category is the terminal classification of a day by the detector.
type Category string

const (
	CategoryNoSchedule    Category = "no_schedule"
	CategoryNoPunch       Category = "no_punch"
	CategoryUnderSchedule Category = "under_schedule"
	CategoryOnSchedule    Category = "on_schedule"
	CategoryOvertime      Category = "overtime"
)

// Detection compares a day's registered minutes against the schedule.
// It drives approval prompts only and never touches the ledger.
type Detection struct {
	HasOvertime       bool     `json:"has_overtime"`
	OvertimeHours     float64  `json:"overtime_hours"`
	OvertimeMinutes   int      `json:"overtime_minutes"`
	ExpectedMinutes   int      `json:"expected_minutes"`
	RegisteredMinutes int      `json:"registered_minutes"`
	Category          Category `json:"category"`
}
