package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database row shape for a ledger entry.
type Expense struct {
	ExpenseID         string          `db:"expense_id"`
	Amount            decimal.Decimal `db:"amount"`
	Description       string          `db:"description"`
	CategoryID        string          `db:"category_id"`
	Account           string          `db:"account"`
	Date              string          `db:"date"`
	Type              string          `db:"type"`
	Source            string          `db:"source"`
	AddedBy           string          `db:"added_by"`
	CreatedAt         time.Time       `db:"created_at"`
	DedupeKey         string          `db:"dedupe_key"`
	BankTransactionID *string         `db:"bank_transaction_id"`
	Merchant          *string         `db:"merchant"`
	Address           *string         `db:"address"`
	OriginalCategory  *string         `db:"original_category"`
	RecurringEntryID  *string         `db:"recurring_entry_id"`
}

// ExpenseDetails is an expense row joined with display columns from the
// categories and users tables.
type ExpenseDetails struct {
	Expense
	CategoryName  *string `db:"category_name"`
	CategoryEmoji *string `db:"category_emoji"`
	AddedByName   *string `db:"added_by_name"`
}
