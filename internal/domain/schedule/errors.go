package schedule

import "errors"

var (
	ErrNotWorkingDay = errors.New("user does not work on this day")
)
