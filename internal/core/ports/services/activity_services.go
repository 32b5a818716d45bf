package services

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// ActivityRecorder is the write side of the audit trail. Recording never
// returns an error; a failed append must not abort the operation it annotates.
type ActivityRecorder interface {
	Record(ctx context.Context, username, action, details string, activityType domain.ActivityType)
}

// ActivitySvcFacade combines recording with the admin-facing trail listing.
type ActivitySvcFacade interface {
	ActivityRecorder

	// ListActivity returns the trail, most recent first. Admin only.
	ListActivity(ctx context.Context, actor domain.Viewer) ([]domain.ActivityLog, error)
}
