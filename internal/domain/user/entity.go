package user

import "time"

type Role string

const (
	RoleEmployee Role = "funcionario" // Regular employee
	RoleManager  Role = "gestor"      // Can approve requests and see all balances
)

type User struct {
	ID           string
	Username     string
	FullName     *string
	PasswordHash string
	Role         Role
	Active       bool

	// Legacy single expected-workday pair, kept as stored text ("HH:MM" or
	// "HH:MM:SS"). The time-bank builder still reads these; the per-weekday
	// configuration lives in the schedule domain.
	DefaultStart *string
	DefaultEnd   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsManager checks if user can approve requests and read other users' data.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}
