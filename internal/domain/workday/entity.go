package workday

import "time"

// DailyResult is the computed outcome of one calendar day. It is never
// persisted: every query recomputes it from punches, the holiday calendar
// and approved certificates.
type DailyResult struct {
	Date             time.Time
	RawHours         float64 // last punch minus first punch
	NetHours         float64 // raw minus lunch deduction
	FinalHours       float64 // net x multiplier minus certificate hours, floored at 0
	LunchDeduction   float64 // 0 or the fixed deduction, in hours
	CertificateHours float64
	Sunday           bool
	Holiday          bool
	Multiplier       int
	FirstPunch       string // "HH:MM", zero result keeps "00:00"
	LastPunch        string
	PunchCount       int
	Details          string
}

// PeriodDay is one worked day inside a period summary.
type PeriodDay struct {
	Date   time.Time
	Hours  float64
	Bonus  bool // Sunday or holiday
	Result DailyResult
}

// PeriodSummary aggregates daily results over an inclusive date range.
type PeriodSummary struct {
	TotalHours         float64
	NormalHours        float64
	SundayHolidayHours float64
	DaysWorked         int
	Start              time.Time
	End                time.Time
	Days               []PeriodDay
}
