package domain

import "github.com/shopspring/decimal"

// ImportSource identifies which bank export dialect a batch came from.
type ImportSource string

const (
	ImportSourceMonzo        ImportSource = "monzo"
	ImportSourceMoneyManager ImportSource = "money_manager"
)

// EntrySource returns the source tag stamped on ledger entries created from
// this import dialect.
func (s ImportSource) EntrySource() EntrySource {
	if s == ImportSourceMonzo {
		return SourceMonzo
	}
	return SourceImport
}

// ImportEntry is one normalized row ready for the import commit stage, after
// the CSV pipeline has applied per-format business rules.
type ImportEntry struct {
	Amount            decimal.Decimal
	Description       string
	CategoryName      string
	Account           string
	Date              string // "2025-09-13"
	Type              EntryType
	BankTransactionID string
	Merchant          string
	OriginalCategory  string
}

// ImportRowError records why one row of an import batch was rejected. Row
// numbers are 1-based over the entries handed to the commit stage.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes one import batch.
type ImportResult struct {
	Inserted int              `json:"inserted"`
	Skipped  int              `json:"skipped"`
	Failed   int              `json:"failed"`
	Total    int              `json:"total"`
	Errors   []ImportRowError `json:"errors"`
}
