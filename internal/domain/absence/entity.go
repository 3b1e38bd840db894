package absence

import "time"

type Absence struct {
	ID           string
	Username     string
	StartDate    time.Time
	EndDate      time.Time
	Kind         string
	Reason       *string
	NoDocument   bool // set when the user declared there is no supporting document
	Status       string
	RegisteredAt time.Time
}
