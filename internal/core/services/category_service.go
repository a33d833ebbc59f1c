package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/homeledger-backend/internal/apperrors"
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/dto"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	entryRepo    portsrepo.LedgerEntryReader
	userSvc      portssvc.HouseholdResolverSvc
}

// NewCategoryService creates the category service. The entry reader is needed
// to block deletion of categories that ledger entries still reference.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, entryRepo portsrepo.LedgerEntryReader, userSvc portssvc.HouseholdResolverSvc) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
		userSvc:      userSvc,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	user, err := s.userSvc.EnsureHouseholdUser(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	// First writer of a name wins: creating an existing name returns the
	// stored category instead of failing.
	existing, err := s.categoryRepo.FindCategoryByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing category: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Emoji:      req.Emoji,
		IsDefault:  req.IsDefault,
		CreatedBy:  user.UserID,
		CreatedAt:  time.Now(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) SeedDefaultCategories(ctx context.Context, seeds []domain.CategorySeed, memberID string) ([]domain.Category, error) {
	user, err := s.userSvc.EnsureHouseholdUser(ctx, memberID)
	if err != nil {
		return nil, err
	}

	created := []domain.Category{}
	for _, seed := range seeds {
		existing, err := s.categoryRepo.FindCategoryByName(ctx, seed.Name)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check default category %q: %w", seed.Name, err)
		}
		if existing != nil {
			continue
		}

		emoji := seed.Emoji
		category := domain.Category{
			CategoryID: uuid.NewString(),
			Name:       seed.Name,
			Emoji:      &emoji,
			IsDefault:  true,
			CreatedBy:  user.UserID,
			CreatedAt:  time.Now(),
		}
		if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to seed default category %q: %w", seed.Name, err)
		}
		created = append(created, category)
	}
	return created, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if _, err := s.userSvc.EnsureHouseholdUser(ctx, req.MemberID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Emoji != nil {
		category.Emoji = req.Emoji
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, memberID string) error {
	if _, err := s.userSvc.EnsureHouseholdUser(ctx, memberID); err != nil {
		return err
	}

	count, err := s.entryRepo.CountEntriesByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to count entries for category %s: %w", categoryID, err)
	}
	if count > 0 {
		return fmt.Errorf("category has %d ledger entries: %w", count, apperrors.ErrConflict)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}
