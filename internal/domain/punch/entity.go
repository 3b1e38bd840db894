package punch

import "time"

// Kind classifies a clock event. Only Start and End bound the worked-hours
// window; Intermediate punches are informational.
type Kind string

const (
	KindStart        Kind = "start"
	KindIntermediate Kind = "intermediate"
	KindEnd          Kind = "end"
)

var KindValues = []string{
	string(KindStart),
	string(KindIntermediate),
	string(KindEnd),
}

type Punch struct {
	ID       string
	Username string
	Kind     Kind
	// Timestamp is naive local wall-clock time, as registered. A zero value
	// means the stored text could not be parsed; Raw keeps the original.
	Timestamp time.Time
	Raw       string
	CreatedAt time.Time
}

// Valid reports whether the stored timestamp parsed.
func (p Punch) Valid() bool {
	return !p.Timestamp.IsZero()
}
