package repositories

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// ActivityLogRepository defines persistence operations for the audit trail.
// The trail is append-only and bounded; implementations prepend new entries
// and drop the oldest beyond domain.MaxActivityLogEntries.
type ActivityLogRepository interface {
	// AppendActivity records a new entry at the head of the trail.
	AppendActivity(ctx context.Context, entry domain.ActivityLog) error

	// ListActivity returns the trail, most recent first.
	ListActivity(ctx context.Context) ([]domain.ActivityLog, error)
}
