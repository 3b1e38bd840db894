package workday

type DailyResultResponse struct {
	Date             string  `json:"date"`
	RawHours         float64 `json:"raw_hours"`
	NetHours         float64 `json:"net_hours"`
	FinalHours       float64 `json:"final_hours"`
	LunchDeduction   float64 `json:"lunch_deduction"`
	CertificateHours float64 `json:"certificate_hours"`
	Sunday           bool    `json:"sunday"`
	Holiday          bool    `json:"holiday"`
	Multiplier       int     `json:"multiplier"`
	FirstPunch       string  `json:"first_punch"`
	LastPunch        string  `json:"last_punch"`
	PunchCount       int     `json:"punch_count"`
	Details          string  `json:"details,omitempty"`
}

func NewDailyResultResponse(r DailyResult) DailyResultResponse {
	return DailyResultResponse{
		Date:             r.Date.Format("2006-01-02"),
		RawHours:         r.RawHours,
		NetHours:         r.NetHours,
		FinalHours:       r.FinalHours,
		LunchDeduction:   r.LunchDeduction,
		CertificateHours: r.CertificateHours,
		Sunday:           r.Sunday,
		Holiday:          r.Holiday,
		Multiplier:       r.Multiplier,
		FirstPunch:       r.FirstPunch,
		LastPunch:        r.LastPunch,
		PunchCount:       r.PunchCount,
		Details:          r.Details,
	}
}

type PeriodDayResponse struct {
	Date   string              `json:"date"`
	Hours  float64             `json:"hours"`
	Bonus  bool                `json:"bonus"`
	Result DailyResultResponse `json:"result"`
}

type PeriodSummaryResponse struct {
	TotalHours         float64             `json:"total_hours"`
	NormalHours        float64             `json:"normal_hours"`
	SundayHolidayHours float64             `json:"sunday_holiday_hours"`
	DaysWorked         int                 `json:"days_worked"`
	Start              string              `json:"start"`
	End                string              `json:"end"`
	Days               []PeriodDayResponse `json:"days"`
}

func NewPeriodSummaryResponse(s PeriodSummary) PeriodSummaryResponse {
	resp := PeriodSummaryResponse{
		TotalHours:         s.TotalHours,
		NormalHours:        s.NormalHours,
		SundayHolidayHours: s.SundayHolidayHours,
		DaysWorked:         s.DaysWorked,
		Start:              s.Start.Format("2006-01-02"),
		End:                s.End.Format("2006-01-02"),
		Days:               make([]PeriodDayResponse, 0, len(s.Days)),
	}
	for _, d := range s.Days {
		resp.Days = append(resp.Days, PeriodDayResponse{
			Date:   d.Date.Format("2006-01-02"),
			Hours:  d.Hours,
			Bonus:  d.Bonus,
			Result: NewDailyResultResponse(d.Result),
		})
	}
	return resp
}
