package dto

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording a ledger entry. The
// dedupe key is always computed server-side, never accepted from the client.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	CategoryID  string          `json:"category" binding:"required"`
	Account     string          `json:"account" binding:"required"`
	Date        string          `json:"date" binding:"required,isodate"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Source      string          `json:"source" binding:"omitempty,oneof=manual monzo import"`

	BankTransactionID *string `json:"bankTransactionId"`
	Merchant          *string `json:"merchant"`
	Address           *string `json:"address"`
	OriginalCategory  *string `json:"originalCategory"`
	RecurringEntryID  *string `json:"recurringEntry"`

	MemberID string `json:"memberId" binding:"required"`
}

// UpdateExpenseRequest defines the data allowed for editing a ledger entry.
// Pointers distinguish omitted fields from zero-value fields; the dedupe key
// is recomputed from the merged old+new fields.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category"`
	Account     *string          `json:"account"`
	Date        *string          `json:"date" binding:"omitempty,isodate"`
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense"`
	MemberID    string           `json:"memberId" binding:"required"`
}

// ListExpensesParams defines query parameters for listing ledger entries.
type ListExpensesParams struct {
	Category  string `form:"category"`
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
}

// Filters maps the query parameters onto domain entry filters.
func (p ListExpensesParams) Filters() domain.EntryFilters {
	return domain.EntryFilters{
		CategoryID: p.Category,
		Type:       domain.EntryType(p.Type),
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
	}
}

// ExpenseResponse is the public view of a ledger entry.
type ExpenseResponse struct {
	ExpenseID   string             `json:"expenseID"`
	Amount      decimal.Decimal    `json:"amount"`
	Description string             `json:"description"`
	CategoryID  string             `json:"category"`
	Account     string             `json:"account"`
	Date        string             `json:"date"`
	Type        domain.EntryType   `json:"type"`
	Source      domain.EntrySource `json:"source"`
}

// ExpenseDetailsResponse adds category and author display info for list views.
type ExpenseDetailsResponse struct {
	ExpenseResponse
	CategoryName  string  `json:"categoryName"`
	CategoryEmoji *string `json:"categoryEmoji,omitempty"`
	AddedByName   string  `json:"addedByName"`
}

// ToExpenseResponse converts a domain.LedgerEntry to its response DTO.
func ToExpenseResponse(entry *domain.LedgerEntry) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   entry.ExpenseID,
		Amount:      entry.Amount,
		Description: entry.Description,
		CategoryID:  entry.CategoryID,
		Account:     entry.Account,
		Date:        entry.Date,
		Type:        entry.Type,
		Source:      entry.Source,
	}
}

// ToListExpenseResponse converts hydrated entries to response DTOs.
func ToListExpenseResponse(entries []domain.LedgerEntryDetails) []ExpenseDetailsResponse {
	responses := make([]ExpenseDetailsResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ExpenseDetailsResponse{
			ExpenseResponse: ToExpenseResponse(&entry.LedgerEntry),
			CategoryName:    entry.CategoryName,
			CategoryEmoji:   entry.CategoryEmoji,
			AddedByName:     entry.AddedByName,
		}
	}
	return responses
}
