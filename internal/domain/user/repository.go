package user

import (
	"context"
)

type UserRepository interface {
	// GetByUsername retrieves a user by the login name punches are keyed on.
	GetByUsername(ctx context.Context, username string) (User, error)

	// ListActiveEmployees retrieves active users with the employee role,
	// ordered by display name. Used by the org-wide balance listing.
	ListActiveEmployees(ctx context.Context) ([]User, error)
}
