package timebank

import (
	"context"
	"time"
)

// TimeBankService builds the running hour-bank ledger. Every call is a
// stateless read-then-derive pipeline: identical inputs produce an
// identical statement.
type TimeBankService interface {
	// BuildStatement merges punch-derived credits and debits, approved
	// overtime, undocumented absences and approved certificates for the
	// inclusive range into one chronologically ordered statement.
	BuildStatement(ctx context.Context, username string, start, end time.Time) (Statement, error)

	// CurrentBalance covers January 1st of the current year through today
	// and returns 0 when the statement cannot be built.
	CurrentBalance(ctx context.Context, username string) float64

	// MonthlyReport builds the statement for one calendar month.
	MonthlyReport(ctx context.Context, username string, year int, month time.Month) (Statement, error)

	// AllBalances returns the current balance of every active employee.
	AllBalances(ctx context.Context) ([]UserBalance, error)
}
