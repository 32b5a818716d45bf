package dto

import "github.com/finvue/finvue_backend/internal/core/domain"

// CreateCategoryRequest defines the data for a custom category.
type CreateCategoryRequest struct {
	Name string                 `json:"name" binding:"required,min=2,max=50"`
	Kind domain.TransactionType `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
}

// CategoryResponse is the public representation of a category record.
type CategoryResponse struct {
	CategoryID         string                 `json:"categoryID"`
	Name               string                 `json:"name"`
	Kind               domain.TransactionType `json:"kind"`
	AdminOnly          bool                   `json:"adminOnly"`
	NeedsSubcategory   bool                   `json:"needsSubcategory"`
	SubcategoryOptions []string               `json:"subcategoryOptions,omitempty"`
	IsCustom           bool                   `json:"isCustom"`
}

// ListCategoriesResponse wraps the category registry.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:         cat.CategoryID,
		Name:               cat.Name,
		Kind:               cat.Kind,
		AdminOnly:          cat.AdminOnly,
		NeedsSubcategory:   cat.NeedsSubcategory,
		SubcategoryOptions: cat.SubcategoryOptions,
		IsCustom:           cat.IsCustom,
	}
}

// ToListCategoriesResponse converts a slice of categories.
func ToListCategoriesResponse(cats []domain.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, len(cats))
	for i := range cats {
		out[i] = ToCategoryResponse(&cats[i])
	}
	return ListCategoriesResponse{Categories: out}
}
