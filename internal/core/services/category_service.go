package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
)

// employeeCategories is the short list employees may record against.
var employeeCategories = map[string]bool{
	"Conveyance":               true,
	domain.RequisitionCategory: true,
}

// categoryService owns the taxonomy rules: who may pick which category and
// when a sub-category is required.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
	activity     portssvc.ActivityRecorder
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, activity portssvc.ActivityRecorder) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, activity: activity}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// visibleTo reports whether the role may record against the category.
func visibleTo(cat domain.Category, role domain.UserRole) bool {
	if cat.AdminOnly && !role.IsGlobalViewer() {
		return false
	}
	if role == domain.RoleEmployee && cat.Kind == domain.Expense && !employeeCategories[cat.Name] {
		return false
	}
	return true
}

func (s *categoryService) ListCategories(ctx context.Context, actor domain.Viewer) ([]domain.Category, error) {
	cats, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	visible := cats[:0]
	for _, cat := range cats {
		if visibleTo(cat, actor.Role) {
			visible = append(visible, cat)
		}
	}
	return visible, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actor domain.Viewer) (*domain.Category, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}
	if existing, err := s.categoryRepo.FindCategoryByName(ctx, name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: category %q", apperrors.ErrDuplicate, name)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	cat := domain.Category{
		CategoryID: "cat_" + uuid.NewString(),
		Name:       name,
		Kind:       req.Kind,
		IsCustom:   true,
	}
	if err := s.categoryRepo.SaveCategory(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "Category Added", fmt.Sprintf("Created category %s (%s)", cat.Name, cat.Kind), domain.ActivitySystem)
	return &cat, nil
}

// ValidateSelection enforces the taxonomy at recording time: the category must
// exist, match the transaction type, be visible to the actor's role, and its
// sub-category requirement must be satisfied exactly.
func (s *categoryService) ValidateSelection(ctx context.Context, categoryName, subCategory string, txnType domain.TransactionType, actor domain.Viewer) error {
	cat, err := s.categoryRepo.FindCategoryByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, categoryName)
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}

	if cat.Kind != txnType {
		return fmt.Errorf("%w: category %q is not valid for %s transactions", apperrors.ErrValidation, categoryName, txnType)
	}
	if !visibleTo(*cat, actor.Role) {
		return apperrors.ErrForbidden
	}

	if cat.NeedsSubcategory {
		if subCategory == "" {
			return fmt.Errorf("%w: category %q requires a sub-category", apperrors.ErrValidation, categoryName)
		}
		if !cat.HasSubcategory(subCategory) {
			return fmt.Errorf("%w: %q is not a sub-category of %q", apperrors.ErrValidation, subCategory, categoryName)
		}
	} else if subCategory != "" {
		return fmt.Errorf("%w: category %q does not take a sub-category", apperrors.ErrValidation, categoryName)
	}
	return nil
}
