package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const dedupeSeparator = "::"

// BuildDedupeKey derives the stable fingerprint used to detect duplicate
// ledger entries regardless of how they were created (manual entry, CSV
// import, recurring materialization). Description and account are trimmed,
// internal whitespace runs collapse to a single space and letters are
// lower-cased; the amount is fixed to two decimal places; date and type pass
// through unchanged.
func BuildDedupeKey(amount decimal.Decimal, description, account, date string, entryType EntryType) string {
	return strings.Join([]string{
		strings.TrimSpace(date),
		amount.StringFixed(2),
		string(entryType),
		normalizeKeyPart(account),
		normalizeKeyPart(description),
	}, dedupeSeparator)
}

func normalizeKeyPart(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
