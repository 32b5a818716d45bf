package services

import (
	"context"
	"time"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// SyncSvcFacade pushes the aggregate to external spreadsheets.
type SyncSvcFacade interface {
	// SyncNow pushes the current state to the configured webhook and returns
	// the new lastSynced timestamp. Returns apperrors.ErrSyncInProgress when a
	// push is already running and apperrors.ErrSyncFailure when the remote
	// rejects the payload; local state is unaffected either way.
	SyncNow(ctx context.Context, actor domain.Viewer) (time.Time, error)

	// ExportTransactions writes the full ledger to the configured Google
	// Sheet and returns the number of rows written. Admin only.
	ExportTransactions(ctx context.Context, actor domain.Viewer) (int, error)
}

// InsightsSvcFacade generates AI spending tips from the viewer's ledger.
type InsightsSvcFacade interface {
	// SpendingTips analyzes the viewer's approved expenses and returns
	// categorized suggestions.
	SpendingTips(ctx context.Context, viewer domain.Viewer) ([]domain.Suggestion, error)
}
