package holiday

import "time"

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Kind      string // "nacional", "estadual", "municipal", ...
	Active    bool
	CreatedAt time.Time
}
