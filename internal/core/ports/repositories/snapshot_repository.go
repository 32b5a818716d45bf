package repositories

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// SnapshotRepository persists the whole aggregate as one JSON document under a
// fixed storage key.
type SnapshotRepository interface {
	// LoadOrInit returns the stored snapshot, or a bootstrapped initial state
	// when none exists yet. Loading is forward-compatible: missing optional
	// fields take their documented defaults.
	LoadOrInit(ctx context.Context) (domain.AppState, error)

	// Save replaces the stored snapshot. Best effort; callers treat failures
	// as non-fatal.
	Save(ctx context.Context, state domain.AppState) error
}
