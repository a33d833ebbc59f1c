package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/dto"
	"github.com/homeledger/homeledger-backend/internal/handlers"
	"github.com/homeledger/homeledger-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) DeleteExpense(ctx context.Context, expenseID string, memberID string) error {
	args := m.Called(ctx, expenseID, memberID)
	return args.Error(0)
}

func (m *MockLedgerService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.LedgerEntryDetails, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntryDetails), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetMonthlySummary(ctx context.Context, month string) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}

func (m *MockReportingService) ExportExpenses(ctx context.Context) ([]domain.ExportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExportRow), args.Error(1)
}

func (m *MockReportingService) GetAvailableMonths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockLedgerService    *MockLedgerService
	mockReportingService *MockReportingService
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockReportingService = new(MockReportingService)

	services := &portssvc.ServiceContainer{
		Ledger:    suite.mockLedgerService,
		Reporting: suite.mockReportingService,
	}
	// IsProduction skips the swagger routes; the API group is unaffected.
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, services)
}

func (suite *ExpenseHandlerTestSuite) TestAddExpense_Success() {
	body := `{
		"amount": 12.5,
		"description": "Coffee",
		"category": "cat1",
		"account": "Card",
		"date": "2025-09-13",
		"type": "expense",
		"memberId": "abhinav"
	}`
	expected := &domain.LedgerEntry{
		ExpenseID:   "e1",
		Amount:      decimal.NewFromFloat(12.5),
		Description: "Coffee",
		CategoryID:  "cat1",
		Account:     "Card",
		Date:        "2025-09-13",
		Type:        domain.Expense,
		Source:      domain.SourceManual,
	}

	suite.mockLedgerService.On("AddExpense", mock.Anything, mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.Description == "Coffee" && req.MemberID == "abhinav"
	})).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("e1", response.ExpenseID)
	suite.Equal(domain.Expense, response.Type)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestAddExpense_RejectsBadDate() {
	body := `{
		"amount": 12.5,
		"description": "Coffee",
		"category": "cat1",
		"account": "Card",
		"date": "13/09/2025",
		"type": "expense",
		"memberId": "abhinav"
	}`

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AddExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestAddExpense_UnknownMemberIsForbidden() {
	body := `{
		"amount": 12.5,
		"description": "Coffee",
		"category": "cat1",
		"account": "Card",
		"date": "2025-09-13",
		"type": "expense",
		"memberId": "stranger"
	}`

	suite.mockLedgerService.On("AddExpense", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUnknownMember).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_PassesFilters() {
	details := []domain.LedgerEntryDetails{
		{
			LedgerEntry: domain.LedgerEntry{
				ExpenseID:   "e1",
				Amount:      decimal.NewFromInt(10),
				Description: "Lunch",
				CategoryID:  "cat1",
				Account:     "Card",
				Date:        "2025-09-13",
				Type:        domain.Expense,
				Source:      domain.SourceManual,
			},
			CategoryName: "Food",
			AddedByName:  "Abhinav",
		},
	}

	suite.mockLedgerService.On("ListExpenses", mock.Anything, mock.MatchedBy(func(p dto.ListExpensesParams) bool {
		return p.Category == "cat1" && p.Type == "expense" && p.Limit == 10 && p.Offset == 0
	})).Return(details, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/expenses?category=cat1&type=expense&limit=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var response []dto.ExpenseDetailsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 1)
	suite.Equal("Food", response[0].CategoryName)
	suite.Equal("Abhinav", response[0].AddedByName)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestListMonths() {
	suite.mockReportingService.On("GetAvailableMonths", mock.Anything).
		Return([]string{"2025-09", "2025-08"}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/expenses/months", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var months []string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &months))
	suite.Equal([]string{"2025-09", "2025-08"}, months)
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_RequiresMemberID() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/expenses/e1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_NotFound() {
	suite.mockLedgerService.On("DeleteExpense", mock.Anything, "missing", "abhinav").
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/expenses/missing?memberId=abhinav", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
