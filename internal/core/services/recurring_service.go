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
	"github.com/homeledger/homeledger-backend/internal/dto"
)

type recurringService struct {
	recurringRepo portsrepo.RecurringEntryRepositoryFacade
	entryRepo     portsrepo.LedgerEntryRepositoryFacade
	categoryRepo  portsrepo.CategoryReader
	userSvc       portssvc.HouseholdResolverSvc
	now           func() time.Time
}

// NewRecurringService creates the recurring-template service and materializer.
func NewRecurringService(recurringRepo portsrepo.RecurringEntryRepositoryFacade, entryRepo portsrepo.LedgerEntryRepositoryFacade, categoryRepo portsrepo.CategoryReader, userSvc portssvc.HouseholdResolverSvc) portssvc.RecurringSvcFacade {
	return &recurringService{
		recurringRepo: recurringRepo,
		entryRepo:     entryRepo,
		categoryRepo:  categoryRepo,
		userSvc:       userSvc,
		now:           time.Now,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) CreateRecurringEntry(ctx context.Context, req dto.CreateRecurringEntryRequest) (*domain.RecurringEntry, error) {
	user, err := s.userSvc.EnsureHouseholdUser(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than 0: %w", apperrors.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}

	entry := domain.RecurringEntry{
		RecurringEntryID: uuid.NewString(),
		Amount:           req.Amount,
		Description:      description,
		CategoryID:       req.CategoryID,
		Account:          req.Account,
		Type:             domain.EntryType(req.Type),
		DayOfMonth:       domain.ClampDayOfMonth(req.DayOfMonth),
		StartMonth:       req.StartMonth,
		EndMonth:         req.EndMonth,
		CreatedBy:        user.UserID,
		CreatedAt:        time.Now(),
	}
	if err := s.recurringRepo.SaveRecurringEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save recurring template: %w", err)
	}
	return &entry, nil
}

func (s *recurringService) DeleteRecurringEntry(ctx context.Context, recurringEntryID string, memberID string) error {
	if _, err := s.userSvc.EnsureHouseholdUser(ctx, memberID); err != nil {
		return err
	}

	if err := s.recurringRepo.DeleteRecurringEntry(ctx, recurringEntryID); err != nil {
		return fmt.Errorf("failed to delete recurring template %s: %w", recurringEntryID, err)
	}
	return nil
}

func (s *recurringService) ListRecurringEntries(ctx context.Context) ([]domain.RecurringEntryDetails, error) {
	templates, err := s.recurringRepo.ListRecurringEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}

	now := s.now()
	details := make([]domain.RecurringEntryDetails, len(templates))
	for i, template := range templates {
		categoryName := "Unknown"
		category, err := s.categoryRepo.FindCategoryByID(ctx, template.CategoryID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to hydrate recurring template %s: %w", template.RecurringEntryID, err)
		}
		if category != nil {
			categoryName = category.Name
		}

		details[i] = domain.RecurringEntryDetails{
			RecurringEntry: template,
			CategoryName:   categoryName,
			NextOccurrence: template.NextOccurrence(now),
		}
	}
	return details, nil
}

// ProcessMonth materializes every template active in the given month. The
// dedupe key of a materialized entry uses the template description with the
// recurring suffix appended, so re-running a month finds the first run's
// entries and skips them. Entries carry the template creator as author, not
// the caller who triggered the run.
func (s *recurringService) ProcessMonth(ctx context.Context, month string, memberID string) (int, error) {
	if _, err := s.userSvc.EnsureHouseholdUser(ctx, memberID); err != nil {
		return 0, err
	}

	templates, err := s.recurringRepo.ListRecurringEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list recurring templates: %w", err)
	}

	created := 0
	for _, template := range templates {
		if !template.ActiveInMonth(month) {
			continue
		}

		chargeDate := template.ChargeDate(month)
		dedupeKey := domain.BuildDedupeKey(
			template.Amount,
			template.Description+domain.RecurringDescriptionSuffix,
			template.Account,
			chargeDate,
			template.Type,
		)

		existing, err := s.entryRepo.FindEntryByDedupeKey(ctx, dedupeKey)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return created, fmt.Errorf("failed to check template %s for %s: %w", template.RecurringEntryID, month, err)
		}
		if existing != nil {
			continue
		}

		templateID := template.RecurringEntryID
		entry := domain.LedgerEntry{
			ExpenseID:        uuid.NewString(),
			Amount:           template.Amount,
			Description:      template.Description,
			CategoryID:       template.CategoryID,
			Account:          template.Account,
			Date:             chargeDate,
			Type:             template.Type,
			Source:           domain.SourceManual,
			AddedBy:          template.CreatedBy,
			CreatedAt:        time.Now(),
			DedupeKey:        dedupeKey,
			RecurringEntryID: &templateID,
		}
		if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
			return created, fmt.Errorf("failed to materialize template %s for %s: %w", template.RecurringEntryID, month, err)
		}
		created++
	}
	return created, nil
}
