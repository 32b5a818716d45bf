package repositories

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// SettingsRepository defines persistence operations for branding and
// configuration settings.
type SettingsRepository interface {
	// GetSettings returns the current settings.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// UpdateSettings replaces the stored settings.
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}

// CategoryRepository defines read operations over the category registry.
type CategoryRepository interface {
	// ListCategories returns the full registry in seed order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// FindCategoryByName retrieves a category record by its display name.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// SaveCategory appends a new category to the registry. Returns
	// apperrors.ErrDuplicate when the name is already taken.
	SaveCategory(ctx context.Context, category domain.Category) error
}

// StateReader exposes a point-in-time copy of the whole aggregate for
// reporting, sync and export. The copy is detached; mutating it has no effect
// on the store.
type StateReader interface {
	Snapshot(ctx context.Context) (domain.AppState, error)
}
