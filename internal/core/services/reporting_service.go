package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type reportingService struct {
	entryRepo    portsrepo.LedgerEntryReader
	categoryRepo portsrepo.CategoryReader
}

// NewReportingService creates the reporting service.
func NewReportingService(entryRepo portsrepo.LedgerEntryReader, categoryRepo portsrepo.CategoryReader) portssvc.ReportingSvcFacade {
	return &reportingService{entryRepo: entryRepo, categoryRepo: categoryRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetMonthlySummary aggregates all entries dated within the month. The range
// upper bound is the literal "-31" suffix: lexicographic comparison on ISO
// dates makes that safe for every month length. Breakdowns cover expense
// entries only and keep first-seen order.
func (s *reportingService) GetMonthlySummary(ctx context.Context, month string) (*domain.MonthlySummary, error) {
	if !monthPattern.MatchString(month) {
		return nil, fmt.Errorf("month must be in YYYY-MM format: %w", apperrors.ErrValidation)
	}

	entries, err := s.entryRepo.FindEntriesByDateRange(ctx, month+"-01", month+"-31")
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", month, err)
	}

	summary := &domain.MonthlySummary{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		CategoryBreakdown: []domain.CategoryBreakdown{},
		AccountBreakdown:  []domain.AccountBreakdown{},
	}

	categoryIndex := map[string]int{}
	accountIndex := map[string]int{}
	dayTotals := map[string]*domain.DailyTotals{}
	categoryNames := map[string]string{}

	for _, entry := range entries {
		totals, ok := dayTotals[entry.Date]
		if !ok {
			totals = &domain.DailyTotals{Income: decimal.Zero, Expense: decimal.Zero}
			dayTotals[entry.Date] = totals
		}

		if entry.Type == domain.Income {
			summary.TotalIncome = summary.TotalIncome.Add(entry.Amount)
			summary.IncomeCount++
			totals.Income = totals.Income.Add(entry.Amount)
			continue
		}

		summary.TotalExpenses = summary.TotalExpenses.Add(entry.Amount)
		summary.ExpenseCount++
		totals.Expense = totals.Expense.Add(entry.Amount)

		name, err := s.categoryName(ctx, entry.CategoryID, categoryNames)
		if err != nil {
			return nil, err
		}
		if i, ok := categoryIndex[entry.CategoryID]; ok {
			summary.CategoryBreakdown[i].Amount = summary.CategoryBreakdown[i].Amount.Add(entry.Amount)
			summary.CategoryBreakdown[i].Count++
		} else {
			categoryIndex[entry.CategoryID] = len(summary.CategoryBreakdown)
			summary.CategoryBreakdown = append(summary.CategoryBreakdown, domain.CategoryBreakdown{
				CategoryID:   entry.CategoryID,
				CategoryName: name,
				Amount:       entry.Amount,
				Count:        1,
			})
		}

		if i, ok := accountIndex[entry.Account]; ok {
			summary.AccountBreakdown[i].Amount = summary.AccountBreakdown[i].Amount.Add(entry.Amount)
		} else {
			accountIndex[entry.Account] = len(summary.AccountBreakdown)
			summary.AccountBreakdown = append(summary.AccountBreakdown, domain.AccountBreakdown{
				Account: entry.Account,
				Amount:  entry.Amount,
			})
		}
	}

	summary.NetAmount = summary.TotalIncome.Sub(summary.TotalExpenses)

	daysInMonth := domain.DaysInMonth(month)
	summary.DailySeries = make([]domain.DailyTotals, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%s-%02d", month, day)
		point := domain.DailyTotals{
			Date:     date,
			Income:   decimal.Zero,
			Expense:  decimal.Zero,
			DayLabel: strconv.Itoa(day),
		}
		if totals, ok := dayTotals[date]; ok {
			point.Income = totals.Income
			point.Expense = totals.Expense
		}
		summary.DailySeries[day-1] = point
	}

	return summary, nil
}

func (s *reportingService) ExportExpenses(ctx context.Context) ([]domain.ExportRow, error) {
	entries, err := s.entryRepo.ListAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for export: %w", err)
	}

	categoryNames := map[string]string{}
	rows := make([]domain.ExportRow, len(entries))
	for i, entry := range entries {
		name, err := s.categoryName(ctx, entry.CategoryID, categoryNames)
		if err != nil {
			return nil, err
		}
		if name == "Unknown" {
			name = domain.FallbackCategoryName
		}

		row := domain.ExportRow{
			Date:         entry.Date,
			Description:  entry.Description,
			Amount:       entry.Amount,
			Type:         entry.Type,
			CategoryName: name,
			Account:      entry.Account,
			Source:       entry.Source,
		}
		if entry.BankTransactionID != nil {
			row.BankTransactionID = *entry.BankTransactionID
		}
		if entry.Merchant != nil {
			row.Merchant = *entry.Merchant
		}
		if entry.OriginalCategory != nil {
			row.OriginalCategory = *entry.OriginalCategory
		}
		rows[i] = row
	}
	return rows, nil
}

func (s *reportingService) GetAvailableMonths(ctx context.Context) ([]string, error) {
	months, err := s.entryRepo.ListEntryMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entry months: %w", err)
	}
	if months == nil {
		return []string{}, nil
	}
	return months, nil
}

func (s *reportingService) categoryName(ctx context.Context, categoryID string, cache map[string]string) (string, error) {
	if name, ok := cache[categoryID]; ok {
		return name, nil
	}

	name := "Unknown"
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
	}
	if category != nil {
		name = category.Name
	}
	cache[categoryID] = name
	return name, nil
}
