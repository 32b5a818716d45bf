package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/utils"
)

// userService implements account management. Every mutation is admin-gated
// and recorded on the activity trail.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	activity portssvc.ActivityRecorder
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, activity portssvc.ActivityRecorder) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, activity: activity}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	active := users[:0]
	for _, u := range users {
		if u.DeletedAt == nil {
			active = append(active, u)
		}
	}
	return active, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actor domain.Viewer) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	if !domain.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, apperrors.ErrInternal
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "User Added", fmt.Sprintf("Created user %s with role %s", user.Username, user.Role), domain.ActivityUser)
	s.LogInfo(ctx, "user created", "user_id", user.UserID, "role", string(user.Role))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Viewer) (*domain.User, error) {
	// Admins manage everyone; other roles may only touch their own profile
	// picture and password.
	selfEdit := actor.UserID == userID
	if actor.Role != domain.RoleAdmin && !selfEdit {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil || req.Role != nil {
		if actor.Role != domain.RoleAdmin {
			return nil, apperrors.ErrForbidden
		}
		if req.Username != nil {
			user.Username = *req.Username
		}
		if req.Role != nil {
			if !domain.ValidRole(*req.Role) {
				return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
			}
			// The bootstrap admin keeps its role so the system always has one.
			if user.Role == domain.RoleAdmin && *req.Role != domain.RoleAdmin {
				return nil, apperrors.ErrProtectedRole
			}
			user.Role = *req.Role
		}
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "failed to hash password")
			return nil, apperrors.ErrInternal
		}
		user.PasswordHash = hash
	}
	if req.ProfilePic != nil {
		user.ProfilePic = *req.ProfilePic
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "User Updated", fmt.Sprintf("Updated user %s", user.Username), domain.ActivityUser)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, actor domain.Viewer) error {
	if actor.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return apperrors.ErrProtectedRole
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "User Deleted", fmt.Sprintf("Removed user %s", user.Username), domain.ActivityUser)
	s.LogInfo(ctx, "user deleted", "user_id", userID)
	return nil
}
