package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/homeledger-backend/internal/apperrors"
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

const defaultImportAccount = "Card"

type importService struct {
	entryRepo    portsrepo.LedgerEntryRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	userSvc      portssvc.HouseholdResolverSvc
}

// NewImportService creates the import commit stage.
func NewImportService(entryRepo portsrepo.LedgerEntryRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, userSvc portssvc.HouseholdResolverSvc) portssvc.ImportSvcFacade {
	return &importService{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		userSvc:      userSvc,
	}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// ImportExpenses validates, dedupes and inserts a batch of normalized entries
// strictly in order. Rows are numbered 1-based over this batch. Duplicate
// checks run before category resolution so a skipped row never creates a
// category as a side effect.
func (s *importService) ImportExpenses(ctx context.Context, source domain.ImportSource, entries []domain.ImportEntry, memberID string) (*domain.ImportResult, error) {
	user, err := s.userSvc.EnsureHouseholdUser(ctx, memberID)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{
		Total:  len(entries),
		Errors: []domain.ImportRowError{},
	}
	if len(entries) == 0 {
		return result, nil
	}

	// In-batch category cache keyed by lower-cased name. Storage lookups are
	// exact-name, so without this a batch mixing "groceries" and "Groceries"
	// would create the category twice.
	categoriesByName := map[string]string{}

	for i, entry := range entries {
		rowNumber := i + 1

		if !entry.Amount.IsPositive() {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNumber, Reason: "Amount must be greater than 0"})
			continue
		}

		description := strings.TrimSpace(entry.Description)
		if description == "" {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNumber, Reason: "Description is required"})
			continue
		}

		account := entry.Account
		if account == "" {
			account = defaultImportAccount
		}
		dedupeKey := domain.BuildDedupeKey(entry.Amount, description, account, entry.Date, entry.Type)

		skipped, err := s.isDuplicate(ctx, entry.BankTransactionID, dedupeKey)
		if err != nil {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNumber, Reason: err.Error()})
			continue
		}
		if skipped {
			result.Skipped++
			continue
		}

		categoryID, err := s.ensureCategoryID(ctx, entry.CategoryName, user.UserID, categoriesByName)
		if err != nil {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNumber, Reason: err.Error()})
			continue
		}

		ledgerEntry := domain.LedgerEntry{
			ExpenseID:   uuid.NewString(),
			Amount:      entry.Amount,
			Description: description,
			CategoryID:  categoryID,
			Account:     account,
			Date:        entry.Date,
			Type:        entry.Type,
			Source:      source.EntrySource(),
			AddedBy:     user.UserID,
			CreatedAt:   time.Now(),
			DedupeKey:   dedupeKey,
		}
		if entry.BankTransactionID != "" {
			ledgerEntry.BankTransactionID = &entry.BankTransactionID
		}
		if entry.Merchant != "" {
			ledgerEntry.Merchant = &entry.Merchant
		}
		if entry.OriginalCategory != "" {
			ledgerEntry.OriginalCategory = &entry.OriginalCategory
		}

		if err := s.entryRepo.SaveEntry(ctx, ledgerEntry); err != nil {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: rowNumber, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	result.Failed = len(result.Errors)
	return result, nil
}

// isDuplicate applies the two independent duplicate signals in order: the
// bank transaction id short-circuits, then the dedupe key.
func (s *importService) isDuplicate(ctx context.Context, bankTransactionID, dedupeKey string) (bool, error) {
	if bankTransactionID != "" {
		existing, err := s.entryRepo.FindEntryByBankTransactionID(ctx, bankTransactionID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return false, fmt.Errorf("duplicate check failed: %w", err)
		}
		if existing != nil {
			return true, nil
		}
	}

	existing, err := s.entryRepo.FindEntryByDedupeKey(ctx, dedupeKey)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("duplicate check failed: %w", err)
	}
	return existing != nil, nil
}

// ensureCategoryID resolves a category name to an id, consulting the batch
// cache, then storage, then creating a non-default category owned by the
// importing user.
func (s *importService) ensureCategoryID(ctx context.Context, rawName, userID string, cache map[string]string) (string, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		name = domain.FallbackCategoryName
	}
	cacheKey := strings.ToLower(name)

	if id, ok := cache[cacheKey]; ok {
		return id, nil
	}

	existing, err := s.categoryRepo.FindCategoryByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("category lookup failed: %w", err)
	}
	if existing != nil {
		cache[cacheKey] = existing.CategoryID
		return existing.CategoryID, nil
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
		IsDefault:  false,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return "", fmt.Errorf("category creation failed: %w", err)
	}
	cache[cacheKey] = category.CategoryID
	return category.CategoryID, nil
}
