package dto

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringEntryRequest defines the payload for creating a recurring
// template. DayOfMonth outside [1,31] is clamped, not rejected.
type CreateRecurringEntryRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	CategoryID  string          `json:"category" binding:"required"`
	Account     string          `json:"account" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	DayOfMonth  int             `json:"dayOfMonth" binding:"required"`
	StartMonth  string          `json:"startMonth" binding:"required,month"`
	EndMonth    *string         `json:"endMonth" binding:"omitempty,month"`
	MemberID    string          `json:"memberId" binding:"required"`
}

// ProcessRecurringRequest asks the materializer to run for one month.
type ProcessRecurringRequest struct {
	Month    string `json:"month" binding:"required,month"`
	MemberID string `json:"memberId" binding:"required"`
}

// RecurringEntryResponse is the public view of a recurring template.
type RecurringEntryResponse struct {
	RecurringEntryID string           `json:"recurringEntryID"`
	Amount           decimal.Decimal  `json:"amount"`
	Description      string           `json:"description"`
	CategoryID       string           `json:"category"`
	CategoryName     string           `json:"categoryName"`
	Account          string           `json:"account"`
	Type             domain.EntryType `json:"type"`
	DayOfMonth       int              `json:"dayOfMonth"`
	StartMonth       string           `json:"startMonth"`
	EndMonth         *string          `json:"endMonth,omitempty"`
	NextOccurrence   string           `json:"nextOccurrence"`
}

// ToListRecurringResponse converts hydrated templates to response DTOs.
func ToListRecurringResponse(entries []domain.RecurringEntryDetails) []RecurringEntryResponse {
	responses := make([]RecurringEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = RecurringEntryResponse{
			RecurringEntryID: entry.RecurringEntryID,
			Amount:           entry.Amount,
			Description:      entry.Description,
			CategoryID:       entry.CategoryID,
			CategoryName:     entry.CategoryName,
			Account:          entry.Account,
			Type:             entry.Type,
			DayOfMonth:       entry.DayOfMonth,
			StartMonth:       entry.StartMonth,
			EndMonth:         entry.EndMonth,
			NextOccurrence:   entry.NextOccurrence,
		}
	}
	return responses
}
