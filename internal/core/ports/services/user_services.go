package services

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all active users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user. Admin only.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actor domain.Viewer) (*domain.User, error)

	// UpdateUser updates an existing user. Admin only.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Viewer) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser marks a user as deleted (soft delete). Admin only; the admin
	// account itself can never be deleted.
	DeleteUser(ctx context.Context, userID string, actor domain.Viewer) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
