package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
)

// activityService records and serves the bounded audit trail.
type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityLogRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo portsrepo.ActivityLogRepository) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: activityRepo}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// Record appends an audit entry. It deliberately swallows repository errors:
// a broken trail must never abort the operation being recorded.
func (s *activityService) Record(ctx context.Context, username, action, details string, activityType domain.ActivityType) {
	entry := domain.ActivityLog{
		LogID:     uuid.NewString(),
		Timestamp: time.Now(),
		Username:  username,
		Action:    action,
		Details:   details,
		Type:      activityType,
	}
	if err := s.activityRepo.AppendActivity(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to append activity log entry", "action", action)
	}
}

func (s *activityService) ListActivity(ctx context.Context, actor domain.Viewer) ([]domain.ActivityLog, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	logs, err := s.activityRepo.ListActivity(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list activity logs")
		return nil, err
	}
	return logs, nil
}
