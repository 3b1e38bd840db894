package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/user"
	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	query := `
		SELECT id, username, full_name, password_hash, role, active,
			   default_start, default_end, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var u user.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.FullName, &u.PasswordHash, &u.Role, &u.Active,
		&u.DefaultStart, &u.DefaultEnd, &u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// ListActiveEmployees implements user.UserRepository.
func (r *userRepository) ListActiveEmployees(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT id, username, full_name, password_hash, role, active,
			   default_start, default_end, created_at, updated_at
		FROM users
		WHERE active = TRUE
		  AND role = $1
		ORDER BY COALESCE(full_name, username)
	`

	rows, err := r.db.Query(ctx, query, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Username, &u.FullName, &u.PasswordHash, &u.Role, &u.Active,
			&u.DefaultStart, &u.DefaultEnd, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
