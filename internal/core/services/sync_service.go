package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
)

// syncService pushes the aggregate to the configured webhook and exports the
// ledger to Google Sheets. At most one webhook push runs at a time.
type syncService struct {
	BaseService
	state         portsrepo.StateReader
	settingsRepo  portsrepo.SettingsRepository
	syncer        clients.RemoteSyncer
	exporter      clients.SpreadsheetExporter
	activity      portssvc.ActivityRecorder
	spreadsheetID string

	syncing atomic.Bool
}

// NewSyncService creates a new sync service. exporter may be nil when no
// Sheets credentials are configured; export calls then fail cleanly.
func NewSyncService(
	state portsrepo.StateReader,
	settingsRepo portsrepo.SettingsRepository,
	syncer clients.RemoteSyncer,
	exporter clients.SpreadsheetExporter,
	activity portssvc.ActivityRecorder,
	spreadsheetID string,
) portssvc.SyncSvcFacade {
	return &syncService{
		state:         state,
		settingsRepo:  settingsRepo,
		syncer:        syncer,
		exporter:      exporter,
		activity:      activity,
		spreadsheetID: spreadsheetID,
	}
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

func (s *syncService) SyncNow(ctx context.Context, actor domain.Viewer) (time.Time, error) {
	if actor.Role != domain.RoleAdmin {
		return time.Time{}, apperrors.ErrForbidden
	}
	if !s.syncing.CompareAndSwap(false, true) {
		return time.Time{}, apperrors.ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.SheetURL == "" {
		return time.Time{}, fmt.Errorf("%w: sheet webhook URL is not configured", apperrors.ErrValidation)
	}

	snapshot, err := s.state.Snapshot(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	if err := s.syncer.Push(ctx, settings.SheetURL, snapshot); err != nil {
		s.activity.Record(ctx, actor.Username, "Sync Failed", "Push to sheet webhook failed", domain.ActivitySystem)
		s.LogError(ctx, err, "sheet webhook push failed")
		return time.Time{}, err
	}

	now := time.Now()
	settings.LastSynced = &now
	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		return time.Time{}, fmt.Errorf("failed to record sync time: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "Data Synced", "Pushed state to sheet webhook", domain.ActivitySystem)
	s.LogInfo(ctx, "state synced to webhook", "last_synced", now.Format(time.RFC3339))
	return now, nil
}

func (s *syncService) ExportTransactions(ctx context.Context, actor domain.Viewer) (int, error) {
	if actor.Role != domain.RoleAdmin {
		return 0, apperrors.ErrForbidden
	}
	if s.exporter == nil || s.spreadsheetID == "" {
		return 0, fmt.Errorf("%w: spreadsheet export is not configured", apperrors.ErrValidation)
	}

	snapshot, err := s.state.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	rows, err := s.exporter.Export(ctx, s.spreadsheetID, snapshot.Transactions)
	if err != nil {
		s.LogError(ctx, err, "spreadsheet export failed")
		return 0, fmt.Errorf("failed to export transactions: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "Data Exported", fmt.Sprintf("Exported %d transactions to spreadsheet", rows), domain.ActivitySystem)
	return rows, nil
}
