package csvimport_test

import (
	"strings"
	"testing"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/csvimport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DetectsMonzo(t *testing.T) {
	csv := strings.Join([]string{
		"Transaction ID,Date,Name,Category,Money Out,Money In,Description,Type",
		"tx_001,13/09/2025,Pret,Eating out,-4.50,,Lunch,Current",
	}, "\n")

	source, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportSourceMonzo, source)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "4.5", entry.Amount.String())
	assert.Equal(t, domain.Expense, entry.Type)
	assert.Equal(t, "2025-09-13", entry.Date)
	assert.Equal(t, "Lunch", entry.Description)
	assert.Equal(t, "Eating out", entry.CategoryName)
	assert.Equal(t, "Monzo - Current", entry.Account)
	assert.Equal(t, "tx_001", entry.BankTransactionID)
	assert.Equal(t, "Pret", entry.Merchant)
	assert.Equal(t, "Eating out", entry.OriginalCategory)
}

func TestParse_MonzoIncomeAndFallbacks(t *testing.T) {
	csv := strings.Join([]string{
		"Transaction ID,Date,Name,Category,Money Out,Money In,Description,Type",
		"tx_002,01/09/2025,Employer,,,1500.00,,",
		"tx_003,2/9/2025,Shop,General,-0.00,,,Current",
		"tx_004,bad-date,Shop,General,-5.00,,,Current",
	}, "\n")

	source, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportSourceMonzo, source)
	// Zero amounts and unparseable dates are dropped.
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, domain.Income, entry.Type)
	assert.Equal(t, "1500", entry.Amount.String())
	assert.Equal(t, "Employer", entry.Description)
	assert.Equal(t, "General", entry.CategoryName)
	assert.Equal(t, "Monzo", entry.Account)
	assert.Equal(t, "2025-09-01", entry.Date)
}

func TestParse_DetectsMoneyManager(t *testing.T) {
	csv := strings.Join([]string{
		"Period,Accounts,Category,Subcategory,Note,GBP,Income/Expense,Description,Amount,Currency,Accounts",
		"13-09-2025,Cash,Food,Groceries,Weekly shop,25.00,Expense,,25.00,GBP,",
	}, "\n")

	source, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportSourceMoneyManager, source)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "25", entry.Amount.String())
	assert.Equal(t, domain.Expense, entry.Type)
	assert.Equal(t, "2025-09-13", entry.Date)
	assert.Equal(t, "Weekly shop", entry.Description)
	assert.Equal(t, "Groceries", entry.CategoryName)
	assert.Equal(t, "Food > Groceries", entry.OriginalCategory)
	assert.Equal(t, "Cash", entry.Account)
	assert.Empty(t, entry.BankTransactionID)
}

func TestParse_MoneyManagerIncomePrefix(t *testing.T) {
	csv := strings.Join([]string{
		"Period,Accounts,Category,Note,Amount,Income/Expense",
		"01-09-2025,Bank,Salary,Monthly pay,2000.00,Income",
		"02-09-2025,Bank,Salary,Bonus,500.00,income",
		"03-09-2025,Bank,Food,Lunch,5.00,Exp.",
	}, "\n")

	_, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.Income, entries[0].Type)
	assert.Equal(t, domain.Income, entries[1].Type)
	assert.Equal(t, domain.Expense, entries[2].Type)
}

func TestParse_MoneyManagerExcludesMonzoTransfers(t *testing.T) {
	csv := strings.Join([]string{
		"Period,Accounts,Category,Note,Amount,Income/Expense",
		"01-09-2025,Input Account,Transfers,Transfer to Monzo account,100.00,Expense",
		"02-09-2025,Cash,Food,Lunch,5.00,Expense",
	}, "\n")

	_, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Lunch", entries[0].Description)
}

func TestParse_MoneyManagerFallbacks(t *testing.T) {
	csv := strings.Join([]string{
		"Period,Category,Amount,Income/Expense",
		"05-09-2025,,10.00,Expense",
	}, "\n")

	_, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Imported entry", entry.Description)
	assert.Equal(t, "General", entry.CategoryName)
	assert.Equal(t, "Card", entry.Account)
	assert.Empty(t, entry.OriginalCategory)
}

func TestParse_CurrencySymbolsStripped(t *testing.T) {
	csv := strings.Join([]string{
		"Period,Accounts,Category,Note,Amount,Income/Expense",
		`01-09-2025,Cash,Bills,Energy,"£1,234.56",Expense`,
	}, "\n")

	_, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1234.56", entries[0].Amount.String())
}

func TestParse_SkipsEmptyRows(t *testing.T) {
	csv := strings.Join([]string{
		"Transaction ID,Date,Name,Money Out,Money In",
		",,,,",
		"tx_005,10/09/2025,Shop,-3.00,",
	}, "\n")

	_, entries, err := csvimport.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParse_UnrecognizedHeaderRejectsWholeFile(t *testing.T) {
	csv := strings.Join([]string{
		"Foo,Bar,Baz",
		"1,2,3",
	}, "\n")

	_, _, err := csvimport.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnrecognizedFormat)
}

func TestParse_EmptyInput(t *testing.T) {
	_, _, err := csvimport.Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnrecognizedFormat)
}
