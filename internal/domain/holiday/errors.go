package holiday

import "errors"

var (
	ErrHolidayExists = errors.New("a holiday is already registered on this date")
)
