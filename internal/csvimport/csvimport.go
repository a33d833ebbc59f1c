// Package csvimport detects and normalizes bank CSV exports into entries the
// import commit stage understands. Two dialects are supported: Monzo
// transaction exports and Money Manager ("legacy") exports.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	fallbackLegacyDescription = "Imported entry"
	fallbackMonzoDescription  = "Monzo transaction"
	fallbackLegacyAccount     = "Card"
	fallbackMonzoAccount      = "Monzo"
)

// row gives header-name access to one CSV record. Duplicate headers (Money
// Manager exports repeat "Accounts") keep all their column positions.
type row struct {
	columns map[string][]int
	record  []string
}

// get returns the first non-empty value among the columns carrying the
// header name (case-insensitive).
func (r row) get(name string) string {
	for _, i := range r.columns[strings.ToLower(name)] {
		if i < len(r.record) && r.record[i] != "" {
			return r.record[i]
		}
	}
	return ""
}

func (r row) has(name string) bool {
	_, ok := r.columns[strings.ToLower(name)]
	return ok
}

func (r row) empty() bool {
	for _, value := range r.record {
		if value != "" {
			return false
		}
	}
	return true
}

// Parse reads a CSV export, detects its dialect from the header row and
// returns the normalized entries. Detection is whole-file: a header matching
// neither dialect rejects the upload with apperrors.ErrUnrecognizedFormat.
func Parse(reader io.Reader) (domain.ImportSource, []domain.ImportEntry, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return "", nil, fmt.Errorf("empty file: %w", apperrors.ErrUnrecognizedFormat)
	}

	columns := map[string][]int{}
	for i, header := range records[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		columns[name] = append(columns[name], i)
	}

	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		r := row{columns: columns, record: record}
		if r.empty() {
			continue
		}
		rows = append(rows, r)
	}

	if _, ok := columns["transaction id"]; ok {
		return domain.ImportSourceMonzo, transformMonzoRows(rows), nil
	}
	_, hasTypeColumn := columns["income/expense"]
	_, hasPeriodColumn := columns["period"]
	if hasTypeColumn || hasPeriodColumn {
		return domain.ImportSourceMoneyManager, transformLegacyRows(rows), nil
	}
	return "", nil, fmt.Errorf("expected a Monzo or Money Manager export: %w", apperrors.ErrUnrecognizedFormat)
}

// transformMonzoRows maps Monzo export rows to entries. A row with money in
// becomes income, otherwise expense; rows without a positive amount or a
// parseable date are dropped.
func transformMonzoRows(rows []row) []domain.ImportEntry {
	entries := []domain.ImportEntry{}
	for _, r := range rows {
		moneyOut := toNumber(r.get("Money Out")).Abs()
		moneyIn := toNumber(r.get("Money In")).Abs()

		amount := moneyOut
		entryType := domain.Expense
		if moneyIn.IsPositive() {
			amount = moneyIn
			entryType = domain.Income
		}
		if !amount.IsPositive() {
			continue
		}

		date := toIsoDate(r.get("Date"), "/")
		if date == "" {
			continue
		}

		categoryName := strings.TrimSpace(r.get("Category"))
		if categoryName == "" {
			categoryName = domain.FallbackCategoryName
		}
		description := firstNonEmpty(r.get("Description"), r.get("Name"), fallbackMonzoDescription)

		account := fallbackMonzoAccount
		if accountType := r.get("Type"); accountType != "" {
			account = "Monzo - " + accountType
		}

		entries = append(entries, domain.ImportEntry{
			Amount:            amount,
			Description:       strings.TrimSpace(description),
			CategoryName:      categoryName,
			Account:           account,
			Date:              date,
			Type:              entryType,
			BankTransactionID: r.get("Transaction ID"),
			Merchant:          r.get("Name"),
			OriginalCategory:  r.get("Category"),
		})
	}
	return entries
}

// transformLegacyRows maps Money Manager export rows to entries. Internal
// transfers into the Monzo account are excluded so they do not double-count
// against the Monzo export.
func transformLegacyRows(rows []row) []domain.ImportEntry {
	entries := []domain.ImportEntry{}
	for _, r := range rows {
		rawAmount := r.get("GBP")
		if r.has("Amount") {
			rawAmount = r.get("Amount")
		}
		amount := toNumber(rawAmount)
		if !amount.IsPositive() {
			continue
		}

		entryType := domain.Expense
		if strings.HasPrefix(strings.ToLower(r.get("Income/Expense")), "inc") {
			entryType = domain.Income
		}

		date := toIsoDate(r.get("Period"), "-")
		if date == "" {
			continue
		}

		description := strings.TrimSpace(firstNonEmpty(r.get("Description"), r.get("Note"), fallbackLegacyDescription))

		category := r.get("Category")
		subcategory := r.get("Subcategory")
		categoryName := firstNonEmpty(strings.TrimSpace(subcategory), category, domain.FallbackCategoryName)

		originalCategory := category
		if category != "" && subcategory != "" {
			originalCategory = category + " > " + subcategory
		}

		account := firstNonEmpty(r.get("Accounts"), r.get("Account"), fallbackLegacyAccount)
		if isInputToMonzoTransfer(account, description) {
			continue
		}

		entries = append(entries, domain.ImportEntry{
			Amount:           amount,
			Description:      description,
			CategoryName:     categoryName,
			Account:          account,
			Date:             date,
			Type:             entryType,
			OriginalCategory: originalCategory,
		})
	}
	return entries
}

// isInputToMonzoTransfer matches the Money Manager rows that record moving
// money into the Monzo account. Those movements show up in the Monzo export
// as real transactions already.
func isInputToMonzoTransfer(account, description string) bool {
	accountLower := strings.ToLower(account)
	descriptionLower := strings.ToLower(description)
	return strings.Contains(accountLower, "input account") &&
		strings.Contains(descriptionLower, "monzo account") &&
		strings.Contains(descriptionLower, "transfer")
}

// toNumber parses a currency cell, tolerating symbols and thousands
// separators. Unparseable cells yield zero so the caller's positive-amount
// check drops the row.
func toNumber(value string) decimal.Decimal {
	var cleaned strings.Builder
	for _, c := range value {
		if c >= '0' && c <= '9' || c == '.' || c == '-' {
			cleaned.WriteRune(c)
		}
	}
	amount, err := decimal.NewFromString(cleaned.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// toIsoDate converts a day-first date like "03/09/2025" or "3-9-2025" to ISO
// "2025-09-03". Anything else yields "".
func toIsoDate(value, separator string) string {
	parts := strings.Split(value, separator)
	if len(parts) != 3 {
		return ""
	}
	day, month, year := padDatePart(parts[0]), padDatePart(parts[1]), parts[2]
	if len(year) != 4 {
		return ""
	}
	return year + "-" + month + "-" + day
}

func padDatePart(part string) string {
	if len(part) < 2 {
		return strings.Repeat("0", 2-len(part)) + part
	}
	return part
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
