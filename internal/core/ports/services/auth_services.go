package services

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// AuthSvcFacade defines authentication and session resolution operations.
type AuthSvcFacade interface {
	// Authenticate verifies the credentials and returns the matching user.
	// Both success and failure are recorded on the activity trail.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// ResolveViewer maps an authenticated user ID to the session context the
	// other services consume. Returns apperrors.ErrNotFound for stale tokens
	// whose user has since been removed.
	ResolveViewer(ctx context.Context, userID string) (domain.Viewer, error)
}
