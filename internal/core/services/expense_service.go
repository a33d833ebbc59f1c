package services

import (
	"context"
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

type ledgerService struct {
	entryRepo portsrepo.LedgerEntryRepositoryFacade
	userSvc   portssvc.HouseholdResolverSvc
}

// NewLedgerService creates the ledger-entry service.
func NewLedgerService(entryRepo portsrepo.LedgerEntryRepositoryFacade, userSvc portssvc.HouseholdResolverSvc) portssvc.LedgerSvcFacade {
	return &ledgerService{entryRepo: entryRepo, userSvc: userSvc}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.LedgerEntry, error) {
	user, err := s.userSvc.EnsureHouseholdUser(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than 0: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}

	source := domain.EntrySource(req.Source)
	if source == "" {
		source = domain.SourceManual
	}

	entry := domain.LedgerEntry{
		ExpenseID:         uuid.NewString(),
		Amount:            req.Amount,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		Account:           req.Account,
		Date:              req.Date,
		Type:              domain.EntryType(req.Type),
		Source:            source,
		AddedBy:           user.UserID,
		CreatedAt:         time.Now(),
		DedupeKey:         domain.BuildDedupeKey(req.Amount, req.Description, req.Account, req.Date, domain.EntryType(req.Type)),
		BankTransactionID: req.BankTransactionID,
		Merchant:          req.Merchant,
		Address:           req.Address,
		OriginalCategory:  req.OriginalCategory,
		RecurringEntryID:  req.RecurringEntryID,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return &entry, nil
}

// UpdateExpense merges the patch onto the stored entry and recomputes the
// dedupe key from the merged amount/description/account/date/type.
func (s *ledgerService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.LedgerEntry, error) {
	if _, err := s.userSvc.EnsureHouseholdUser(ctx, req.MemberID); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", expenseID, err)
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than 0: %w", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.CategoryID != nil {
		entry.CategoryID = *req.CategoryID
	}
	if req.Account != nil {
		entry.Account = *req.Account
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Type != nil {
		entry.Type = domain.EntryType(*req.Type)
	}
	entry.DedupeKey = domain.BuildDedupeKey(entry.Amount, entry.Description, entry.Account, entry.Date, entry.Type)

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry %s: %w", expenseID, err)
	}
	return entry, nil
}

func (s *ledgerService) DeleteExpense(ctx context.Context, expenseID string, memberID string) error {
	if _, err := s.userSvc.EnsureHouseholdUser(ctx, memberID); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", expenseID, err)
	}
	return nil
}

func (s *ledgerService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.LedgerEntryDetails, error) {
	entries, err := s.entryRepo.FindEntries(ctx, params.Filters(), params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		return []domain.LedgerEntryDetails{}, nil
	}
	return entries, nil
}
