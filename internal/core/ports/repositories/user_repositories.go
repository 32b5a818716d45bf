package repositories

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser stores a new user. Returns apperrors.ErrDuplicate when the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// UpdateUser replaces the stored user with the same id.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser marks a user as deleted (soft delete).
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns every user in creation order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
