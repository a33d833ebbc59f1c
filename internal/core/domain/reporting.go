package domain

import "github.com/shopspring/decimal"

// MonthlySummary aggregates one calendar month of ledger entries.
type MonthlySummary struct {
	TotalIncome       decimal.Decimal     `json:"totalIncome"`
	TotalExpenses     decimal.Decimal     `json:"totalExpenses"`
	NetAmount         decimal.Decimal     `json:"netAmount"`
	ExpenseCount      int                 `json:"expenseCount"`
	IncomeCount       int                 `json:"incomeCount"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	DailySeries       []DailyTotals       `json:"dailySeries"`
	AccountBreakdown  []AccountBreakdown  `json:"accountBreakdown"`
}

// CategoryBreakdown totals expense entries per category.
type CategoryBreakdown struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Count        int             `json:"count"`
}

// DailyTotals is one point of the per-day income/expense series. The series
// covers every day of the month, including days with no entries.
type DailyTotals struct {
	Date     string          `json:"date"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	DayLabel string          `json:"dayLabel"`
}

// AccountBreakdown totals expense entries per account label.
type AccountBreakdown struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// ExportRow is one denormalized line of the CSV export. Field order matches
// the produced column order.
type ExportRow struct {
	Date              string          `csv:"Date"`
	Description       string          `csv:"Description"`
	Amount            decimal.Decimal `csv:"Amount"`
	Type              EntryType       `csv:"Type"`
	CategoryName      string          `csv:"Category"`
	Account           string          `csv:"Account"`
	Source            EntrySource     `csv:"Source"`
	BankTransactionID string          `csv:"Bank Transaction ID"`
	Merchant          string          `csv:"Merchant"`
	OriginalCategory  string          `csv:"Original Category"`
}
