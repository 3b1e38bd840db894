package timebank

import "time"

// Category tags one statement line.
type Category string

const (
	CategoryWorkSundayHoliday  Category = "work_sunday_holiday"
	CategoryLateArrival        Category = "late_arrival"
	CategoryEarlyDeparture     Category = "early_departure"
	CategoryApprovedOvertime   Category = "approved_overtime"
	CategoryUnapprovedOvertime Category = "unapproved_overtime" // informational, never moves the balance
	CategoryUnexcusedAbsence   Category = "unexcused_absence"
	CategoryCertificateDebit   Category = "approved_certificate_debit"
)

// Entry is one line of the time-bank statement. RunningBalance is the
// prefix sum of credit minus debit after the date sort.
type Entry struct {
	Date           time.Time `json:"-"`
	DateText       string    `json:"date"`
	Category       Category  `json:"category"`
	Description    string    `json:"description"`
	Credit         float64   `json:"credit"`
	Debit          float64   `json:"debit"`
	RunningBalance float64   `json:"running_balance"`
}

// Period is the inclusive range a statement covers.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Statement is the full result of a ledger build. Success=false with a
// message is a legitimate, displayable answer (unknown user), not a
// transport failure.
type Statement struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message,omitempty"`
	BalanceTotal float64 `json:"balance_total"`
	Entries      []Entry `json:"entries"`
	Period       Period  `json:"period"`
}

// UserBalance is one row of the org-wide balance listing.
type UserBalance struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
}
