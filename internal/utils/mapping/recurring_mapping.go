package mapping

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/models"
)

// ToModelRecurringEntry converts a domain RecurringEntry to a model RecurringEntry
func ToModelRecurringEntry(d domain.RecurringEntry) models.RecurringEntry {
	return models.RecurringEntry{
		RecurringEntryID: d.RecurringEntryID,
		Amount:           d.Amount,
		Description:      d.Description,
		CategoryID:       d.CategoryID,
		Account:          d.Account,
		Type:             string(d.Type),
		DayOfMonth:       d.DayOfMonth,
		StartMonth:       d.StartMonth,
		EndMonth:         d.EndMonth,
		CreatedBy:        d.CreatedBy,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainRecurringEntry converts a model RecurringEntry to a domain RecurringEntry
func ToDomainRecurringEntry(m models.RecurringEntry) domain.RecurringEntry {
	return domain.RecurringEntry{
		RecurringEntryID: m.RecurringEntryID,
		Amount:           m.Amount,
		Description:      m.Description,
		CategoryID:       m.CategoryID,
		Account:          m.Account,
		Type:             domain.EntryType(m.Type),
		DayOfMonth:       m.DayOfMonth,
		StartMonth:       m.StartMonth,
		EndMonth:         m.EndMonth,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainRecurringEntrySlice converts a slice of model RecurringEntries to domain RecurringEntries
func ToDomainRecurringEntrySlice(ms []models.RecurringEntry) []domain.RecurringEntry {
	ds := make([]domain.RecurringEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringEntry(m)
	}
	return ds
}
