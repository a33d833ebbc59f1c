package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecurringDescriptionSuffix is appended to the description when computing the
// dedupe key of a materialized entry. It keeps two materializations of the
// same template in the same month colliding with each other while leaving
// manually entered look-alikes untouched.
const RecurringDescriptionSuffix = "-recurring"

// RecurringEntry is a recipe that produces at most one ledger entry per active
// month. Templates are never auto-mutated; deleting one leaves already
// materialized entries in place.
type RecurringEntry struct {
	RecurringEntryID string          `json:"recurringEntryID"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	CategoryID       string          `json:"categoryID"`
	Account          string          `json:"account"`
	Type             EntryType       `json:"type"`
	DayOfMonth       int             `json:"dayOfMonth"` // clamped into [1,31]
	StartMonth       string          `json:"startMonth"` // "2025-01"
	EndMonth         *string         `json:"endMonth,omitempty"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// RecurringEntryDetails is a template hydrated with its category name and the
// next-occurrence preview for list views.
type RecurringEntryDetails struct {
	RecurringEntry
	CategoryName   string `json:"categoryName"`
	NextOccurrence string `json:"nextOccurrence"`
}

// ActiveInMonth reports whether the template should charge in the given
// month. Months compare lexicographically, which is sound because the format
// is zero-padded YYYY-MM; an absent end month means unbounded future.
func (r RecurringEntry) ActiveInMonth(month string) bool {
	if month < r.StartMonth {
		return false
	}
	if r.EndMonth != nil && month > *r.EndMonth {
		return false
	}
	return true
}

// ChargeDate computes the ISO date the template charges on in the given
// month, clamping the configured day to the month's real length.
func (r RecurringEntry) ChargeDate(month string) string {
	day := ClampDayOfMonth(r.DayOfMonth)
	if last := DaysInMonth(month); day > last {
		day = last
	}
	return fmt.Sprintf("%s-%02d", month, day)
}

// NextOccurrence is a display-only preview: it scans up to six months forward
// from now for the first active month, falling back to the end month (or the
// current month when there is none). It never drives materialization.
func (r RecurringEntry) NextOccurrence(now time.Time) string {
	currentMonth := now.Format("2006-01")
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 6; offset++ {
		month := firstOfMonth.AddDate(0, offset, 0).Format("2006-01")
		if r.ActiveInMonth(month) {
			return r.ChargeDate(month)
		}
	}
	if r.EndMonth != nil {
		return r.ChargeDate(*r.EndMonth)
	}
	return r.ChargeDate(currentMonth)
}

// ClampDayOfMonth forces a day-of-month into [1,31].
func ClampDayOfMonth(day int) int {
	if day < 1 {
		return 1
	}
	if day > 31 {
		return 31
	}
	return day
}

// DaysInMonth returns the number of days in a "YYYY-MM" month, handling leap
// years via calendar arithmetic. Malformed input yields 31 so callers can
// still produce a date for later validation to reject.
func DaysInMonth(month string) int {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return 31
	}
	year, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || m < 1 || m > 12 {
		return 31
	}
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
