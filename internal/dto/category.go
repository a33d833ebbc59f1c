package dto

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name      string  `json:"name" binding:"required"`
	Emoji     *string `json:"emoji"`
	IsDefault bool    `json:"isDefault"`
	MemberID  string  `json:"memberId" binding:"required"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Pointers distinguish omitted fields from zero-value fields.
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Emoji    *string `json:"emoji"`
	MemberID string  `json:"memberId" binding:"required"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	CategoryID string  `json:"categoryID"`
	Name       string  `json:"name"`
	Emoji      *string `json:"emoji,omitempty"`
	IsDefault  bool    `json:"isDefault"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Emoji:      category.Emoji,
		IsDefault:  category.IsDefault,
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(&category)
	}
	return responses
}
