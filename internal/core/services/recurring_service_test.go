package services_test

import (
	"context"
	"testing"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/core/services"
	"github.com/homeledger/homeledger-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecurringEntryRepository ---
type MockRecurringEntryRepository struct {
	mock.Mock
}

func (m *MockRecurringEntryRepository) FindRecurringEntryByID(ctx context.Context, recurringEntryID string) (*domain.RecurringEntry, error) {
	args := m.Called(ctx, recurringEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringEntry), args.Error(1)
}

func (m *MockRecurringEntryRepository) ListRecurringEntries(ctx context.Context) ([]domain.RecurringEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringEntry), args.Error(1)
}

func (m *MockRecurringEntryRepository) SaveRecurringEntry(ctx context.Context, entry domain.RecurringEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRecurringEntryRepository) DeleteRecurringEntry(ctx context.Context, recurringEntryID string) error {
	args := m.Called(ctx, recurringEntryID)
	return args.Error(0)
}

// --- Test Suite ---
type RecurringServiceTestSuite struct {
	suite.Suite
	mockRecurringRepo *MockRecurringEntryRepository
	mockEntryRepo     *MockLedgerEntryRepository
	mockCategoryRepo  *MockCategoryRepository
	mockResolver      *MockHouseholdResolver
	service           portssvc.RecurringSvcFacade
}

func (suite *RecurringServiceTestSuite) SetupTest() {
	suite.mockRecurringRepo = new(MockRecurringEntryRepository)
	suite.mockEntryRepo = new(MockLedgerEntryRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockResolver = new(MockHouseholdResolver)
	suite.service = services.NewRecurringService(suite.mockRecurringRepo, suite.mockEntryRepo, suite.mockCategoryRepo, suite.mockResolver)
}

func rentTemplate() domain.RecurringEntry {
	return domain.RecurringEntry{
		RecurringEntryID: "r1",
		Amount:           decimal.NewFromInt(900),
		Description:      "Rent",
		CategoryID:       "cat1",
		Account:          "Bank",
		Type:             domain.Expense,
		DayOfMonth:       1,
		StartMonth:       "2025-01",
		CreatedBy:        "owner",
	}
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringEntry_ClampsDayOfMonth() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1"}
	req := dto.CreateRecurringEntryRequest{
		Amount:      decimal.NewFromInt(900),
		Description: "Rent",
		CategoryID:  "cat1",
		Account:     "Bank",
		Type:        "expense",
		DayOfMonth:  99,
		StartMonth:  "2025-01",
		MemberID:    "abhinav",
	}

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()
	suite.mockRecurringRepo.On("SaveRecurringEntry", ctx, mock.MatchedBy(func(e domain.RecurringEntry) bool {
		return e.DayOfMonth == 31 && e.CreatedBy == "u1" && e.RecurringEntryID != ""
	})).Return(nil).Once()

	entry, err := suite.service.CreateRecurringEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(31, entry.DayOfMonth)
	suite.mockRecurringRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringEntry_RejectsNonPositiveAmount() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1"}
	req := dto.CreateRecurringEntryRequest{
		Amount:      decimal.Zero,
		Description: "Rent",
		MemberID:    "abhinav",
	}

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()

	entry, err := suite.service.CreateRecurringEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecurringRepo.AssertNotCalled(suite.T(), "SaveRecurringEntry", mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestDeleteRecurringEntry() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1"}

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()
	suite.mockRecurringRepo.On("DeleteRecurringEntry", ctx, "r1").Return(nil).Once()

	err := suite.service.DeleteRecurringEntry(ctx, "r1", "abhinav")

	suite.Require().NoError(err)
	suite.mockRecurringRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestListRecurringEntries_HydratesCategoryName() {
	ctx := context.Background()
	endMonth := "2025-06"
	known := rentTemplate()
	known.EndMonth = &endMonth
	orphan := rentTemplate()
	orphan.RecurringEntryID = "r2"
	orphan.CategoryID = "deleted"
	orphan.EndMonth = &endMonth

	suite.mockRecurringRepo.On("ListRecurringEntries", ctx).Return([]domain.RecurringEntry{known, orphan}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "cat1").Return(&domain.Category{CategoryID: "cat1", Name: "Housing"}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "deleted").Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.ListRecurringEntries(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(details, 2)
	suite.Equal("Housing", details[0].CategoryName)
	suite.Equal("Unknown", details[1].CategoryName)
	// Both templates ended in June 2025, so the preview pins to the end month.
	suite.Equal("2025-06-01", details[0].NextOccurrence)
}

func (suite *RecurringServiceTestSuite) TestProcessMonth_MaterializesActiveTemplatesOnly() {
	ctx := context.Background()
	user := &domain.User{UserID: "caller"}
	active := rentTemplate()
	future := rentTemplate()
	future.RecurringEntryID = "r2"
	future.StartMonth = "2026-01"

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()
	suite.mockRecurringRepo.On("ListRecurringEntries", ctx).Return([]domain.RecurringEntry{active, future}, nil).Once()
	suite.mockEntryRepo.On("FindEntryByDedupeKey", ctx, "2025-09-01::900.00::expense::bank::rent-recurring").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Description == "Rent" &&
			e.Date == "2025-09-01" &&
			e.AddedBy == "owner" &&
			e.Source == domain.SourceManual &&
			e.RecurringEntryID != nil && *e.RecurringEntryID == "r1"
	})).Return(nil).Once()

	created, err := suite.service.ProcessMonth(ctx, "2025-09", "abhinav")

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestProcessMonth_IsIdempotent() {
	ctx := context.Background()
	user := &domain.User{UserID: "caller"}

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()
	suite.mockRecurringRepo.On("ListRecurringEntries", ctx).Return([]domain.RecurringEntry{rentTemplate()}, nil).Once()
	suite.mockEntryRepo.On("FindEntryByDedupeKey", ctx, mock.Anything).
		Return(&domain.LedgerEntry{ExpenseID: "already-there"}, nil).Once()

	created, err := suite.service.ProcessMonth(ctx, "2025-09", "abhinav")

	suite.Require().NoError(err)
	suite.Equal(0, created)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestProcessMonth_ClampsChargeDateToMonthEnd() {
	ctx := context.Background()
	user := &domain.User{UserID: "caller"}
	template := rentTemplate()
	template.DayOfMonth = 31

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()
	suite.mockRecurringRepo.On("ListRecurringEntries", ctx).Return([]domain.RecurringEntry{template}, nil).Once()
	suite.mockEntryRepo.On("FindEntryByDedupeKey", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Date == "2025-02-28"
	})).Return(nil).Once()

	created, err := suite.service.ProcessMonth(ctx, "2025-02", "abhinav")

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestProcessMonth_SaveFailureAbortsRun() {
	ctx := context.Background()
	user := &domain.User{UserID: "caller"}
	first := rentTemplate()
	second := rentTemplate()
	second.RecurringEntryID = "r2"
	second.Description = "Internet"

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "abhinav").Return(user, nil).Once()
	suite.mockRecurringRepo.On("ListRecurringEntries", ctx).Return([]domain.RecurringEntry{first, second}, nil).Once()
	suite.mockEntryRepo.On("FindEntryByDedupeKey", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.Anything).Return(assert.AnError).Once()

	created, err := suite.service.ProcessMonth(ctx, "2025-09", "abhinav")

	suite.Require().Error(err)
	suite.Equal(0, created)
	suite.ErrorIs(err, assert.AnError)
	// The failing save stops the pass; the second template is never attempted.
	suite.mockEntryRepo.AssertNumberOfCalls(suite.T(), "SaveEntry", 1)
}

func (suite *RecurringServiceTestSuite) TestProcessMonth_UnknownMember() {
	ctx := context.Background()

	suite.mockResolver.On("EnsureHouseholdUser", ctx, "stranger").
		Return(nil, apperrors.ErrUnknownMember).Once()

	created, err := suite.service.ProcessMonth(ctx, "2025-09", "stranger")

	suite.Require().Error(err)
	suite.Equal(0, created)
	suite.ErrorIs(err, apperrors.ErrUnknownMember)
	suite.mockRecurringRepo.AssertNotCalled(suite.T(), "ListRecurringEntries", mock.Anything)
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
