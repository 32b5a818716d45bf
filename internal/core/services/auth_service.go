package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/utils"
)

// authService verifies credentials and resolves session viewers.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	activity portssvc.ActivityRecorder
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepository, activity portssvc.ActivityRecorder) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, activity: activity}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies the credentials. Failures return ErrUnauthorized
// without distinguishing unknown usernames from wrong passwords.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.activity.Record(ctx, username, "Login Failed", fmt.Sprintf("Failed login attempt for username: %s", username), domain.ActivityAuth)
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user during login", "username", username)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.DeletedAt != nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.activity.Record(ctx, username, "Login Failed", fmt.Sprintf("Failed login attempt for username: %s", username), domain.ActivityAuth)
		return nil, apperrors.ErrUnauthorized
	}

	s.activity.Record(ctx, user.Username, "Login", "User logged in", domain.ActivityAuth)
	s.LogInfo(ctx, "user logged in", "user_id", user.UserID)
	return user, nil
}

func (s *authService) ResolveViewer(ctx context.Context, userID string) (domain.Viewer, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.Viewer{}, err
	}
	if user.DeletedAt != nil {
		return domain.Viewer{}, apperrors.ErrNotFound
	}
	return domain.Viewer{UserID: user.UserID, Username: user.Username, Role: user.Role}, nil
}
