package services

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/dto"
)

// SettingsSvcFacade defines branding and configuration operations.
type SettingsSvcFacade interface {
	// GetSettings returns the current settings. Visible to every role.
	GetSettings(ctx context.Context) (domain.Settings, error)

	// UpdateSettings applies the given changes. Admin only.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.Viewer) (domain.Settings, error)
}

// CategorySvcFacade defines operations over the category registry.
type CategorySvcFacade interface {
	// ListCategories returns the registry filtered to what the actor's role
	// may record against, in seed order.
	ListCategories(ctx context.Context, actor domain.Viewer) ([]domain.Category, error)

	// CreateCategory adds a custom category. Admin only.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actor domain.Viewer) (*domain.Category, error)

	// ValidateSelection checks that the actor may record a transaction of the
	// given type against the category/subcategory pair.
	ValidateSelection(ctx context.Context, categoryName, subCategory string, txnType domain.TransactionType, actor domain.Viewer) error
}
