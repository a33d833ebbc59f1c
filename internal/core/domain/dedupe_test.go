package domain_test

import (
	"testing"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildDedupeKey(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		description string
		account     string
		date        string
		entryType   domain.EntryType
		want        string
	}{
		{
			name:        "basic expense",
			amount:      decimal.NewFromFloat(12.5),
			description: "Coffee",
			account:     "Card",
			date:        "2025-09-13",
			entryType:   domain.Expense,
			want:        "2025-09-13::12.50::expense::card::coffee",
		},
		{
			name:        "amount always carries two decimals",
			amount:      decimal.NewFromInt(100),
			description: "Rent",
			account:     "Bank",
			date:        "2025-09-01",
			entryType:   domain.Expense,
			want:        "2025-09-01::100.00::expense::bank::rent",
		},
		{
			name:        "description case and whitespace normalized",
			amount:      decimal.NewFromFloat(9.99),
			description: "  Weekly   SHOP  ",
			account:     " Monzo  -  Current ",
			date:        " 2025-09-13 ",
			entryType:   domain.Expense,
			want:        "2025-09-13::9.99::expense::monzo - current::weekly shop",
		},
		{
			name:        "income and expense never collide",
			amount:      decimal.NewFromFloat(50),
			description: "Transfer",
			account:     "Card",
			date:        "2025-09-13",
			entryType:   domain.Income,
			want:        "2025-09-13::50.00::income::card::transfer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BuildDedupeKey(tt.amount, tt.description, tt.account, tt.date, tt.entryType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildDedupeKey_EquivalentSpellingsCollide(t *testing.T) {
	a := domain.BuildDedupeKey(decimal.NewFromFloat(12.5), "Coffee  Shop", "Card", "2025-09-13", domain.Expense)
	b := domain.BuildDedupeKey(decimal.NewFromFloat(12.50), "coffee shop", "CARD", "2025-09-13", domain.Expense)
	assert.Equal(t, a, b)
}
