package services

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/dto"
)

// CategoryReaderSvc defines read operations for categories
type CategoryReaderSvc interface {
	// ListCategories returns all categories, defaults first then alphabetical.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// GetCategoryByName retrieves a category by its exact stored name.
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories
type CategoryWriterSvc interface {
	// CreateCategory creates a category, or returns the existing one when the
	// name is already taken (first writer wins).
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory patches name and/or emoji of a category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category; blocked with apperrors.ErrConflict
	// while ledger entries still reference it.
	DeleteCategory(ctx context.Context, categoryID string, memberID string) error

	// SeedDefaultCategories applies the static default-category table,
	// skipping names that already exist. Returns the newly created ones.
	SeedDefaultCategories(ctx context.Context, seeds []domain.CategorySeed, memberID string) ([]domain.Category, error)
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
