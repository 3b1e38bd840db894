package auth

import (
	"context"
)

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
