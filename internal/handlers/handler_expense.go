package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/dto"
	"github.com/homeledger/homeledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to ledger entries.
type expenseHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvcFacade) *expenseHandler {
	return &expenseHandler{
		ledgerService:    ls,
		reportingService: rs,
	}
}

// registerExpenseRoutes registers routes related to ledger entries.
func registerExpenseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newExpenseHandler(ledgerService, reportingService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.addExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/months", h.listMonths)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// addExpense godoc
// @Summary Record a ledger entry
// @Description Records an income or expense entry; the dedupe key is computed server-side
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Entry details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to record entry"
// @Router /expenses [post]
func (h *expenseHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.AddExpense(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(entry))
}

// listExpenses godoc
// @Summary List ledger entries
// @Description Returns a filtered, paginated listing of entries, newest first, hydrated with category and author info
// @Tags expenses
// @Produce  json
// @Param   category query string false "Filter by category id"
// @Param   type query string false "Filter by entry type" Enums(income, expense)
// @Param   startDate query string false "Earliest date (inclusive)"
// @Param   endDate query string false "Latest date (inclusive)"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ExpenseDetailsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.ledgerService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(entries))
}

// listMonths godoc
// @Summary List months with entries
// @Description Returns the distinct months that have at least one entry, newest first
// @Tags expenses
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string "Failed to list months"
// @Router /expenses/months [get]
func (h *expenseHandler) listMonths(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	months, err := h.reportingService.GetAvailableMonths(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list entry months", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list months"})
		return
	}

	c.JSON(http.StatusOK, months)
}

// updateExpense godoc
// @Summary Update a ledger entry
// @Description Merges the patch onto the stored entry and recomputes its dedupe key
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	expenseID := c.Param("expenseID")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.ledgerService.UpdateExpense(c.Request.Context(), expenseID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		default:
			logger.Error("Failed to update ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(entry))
}

// deleteExpense godoc
// @Summary Delete a ledger entry
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   memberId query string true "Member identifier"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Missing member id"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	expenseID := c.Param("expenseID")

	memberID := c.Query("memberId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memberId query parameter is required"})
		return
	}

	err := h.ledgerService.DeleteExpense(c.Request.Context(), expenseID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		default:
			logger.Error("Failed to delete ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
