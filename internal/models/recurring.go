package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringEntry is the database row shape for a recurring template.
type RecurringEntry struct {
	RecurringEntryID string          `db:"recurring_entry_id"`
	Amount           decimal.Decimal `db:"amount"`
	Description      string          `db:"description"`
	CategoryID       string          `db:"category_id"`
	Account          string          `db:"account"`
	Type             string          `db:"type"`
	DayOfMonth       int             `db:"day_of_month"`
	StartMonth       string          `db:"start_month"`
	EndMonth         *string         `db:"end_month"`
	CreatedBy        string          `db:"created_by"`
	CreatedAt        time.Time       `db:"created_at"`
}
