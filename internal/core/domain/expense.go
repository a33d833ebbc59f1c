package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes money coming in from money going out.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// EntrySource marks how a ledger entry was created.
type EntrySource string

const (
	SourceManual EntrySource = "manual"
	SourceMonzo  EntrySource = "monzo"
	SourceImport EntrySource = "import"
)

// LedgerEntry is one recorded income or expense transaction, shared between
// all household members.
type LedgerEntry struct {
	ExpenseID   string          `json:"expenseID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryID"`
	Account     string          `json:"account"`
	Date        string          `json:"date"` // "2025-09-13"
	Type        EntryType       `json:"type"`
	Source      EntrySource     `json:"source"`
	AddedBy     string          `json:"addedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	DedupeKey   string          `json:"dedupeKey"`

	// Bank import metadata.
	BankTransactionID *string `json:"bankTransactionID,omitempty"`
	Merchant          *string `json:"merchant,omitempty"`
	Address           *string `json:"address,omitempty"`
	OriginalCategory  *string `json:"originalCategory,omitempty"`

	// Back-reference to the recurring template that produced this entry, if
	// any. Dangles harmlessly when the template is deleted.
	RecurringEntryID *string `json:"recurringEntryID,omitempty"`
}

// LedgerEntryDetails is a ledger entry hydrated with category and author
// display info for list views.
type LedgerEntryDetails struct {
	LedgerEntry
	CategoryName  string  `json:"categoryName"`
	CategoryEmoji *string `json:"categoryEmoji,omitempty"`
	AddedByName   string  `json:"addedByName"`
}

// EntryFilters narrows a ledger listing. Zero values mean "no filter".
type EntryFilters struct {
	CategoryID string
	Type       EntryType
	StartDate  string
	EndDate    string
}
