package dto

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImportEntryRequest is one normalized row submitted for bulk import. Rows are
// validated individually by the commit stage, not by binding, so one bad row
// never rejects the whole batch.
type ImportEntryRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	CategoryName      string          `json:"categoryName"`
	Account           string          `json:"account"`
	Date              string          `json:"date"`
	Type              string          `json:"type"`
	BankTransactionID string          `json:"bankTransactionId"`
	Merchant          string          `json:"merchant"`
	OriginalCategory  string          `json:"originalCategory"`
}

// ImportExpensesRequest defines the payload for a bulk import of entries
// already normalized on the client.
type ImportExpensesRequest struct {
	Source   string               `json:"source" binding:"required,oneof=monzo money_manager"`
	Entries  []ImportEntryRequest `json:"entries" binding:"required"`
	MemberID string               `json:"memberId" binding:"required"`
}

// ToImportEntries maps request rows onto domain import entries.
func ToImportEntries(rows []ImportEntryRequest) []domain.ImportEntry {
	entries := make([]domain.ImportEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.ImportEntry{
			Amount:            row.Amount,
			Description:       row.Description,
			CategoryName:      row.CategoryName,
			Account:           row.Account,
			Date:              row.Date,
			Type:              domain.EntryType(row.Type),
			BankTransactionID: row.BankTransactionID,
			Merchant:          row.Merchant,
			OriginalCategory:  row.OriginalCategory,
		}
	}
	return entries
}
