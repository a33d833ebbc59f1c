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

// recurringHandler handles HTTP requests related to recurring templates.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

// newRecurringHandler creates a new recurringHandler.
func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{
		recurringService: rs,
	}
}

// registerRecurringRoutes registers routes related to recurring templates.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurringEntry)
		recurring.GET("", h.listRecurringEntries)
		recurring.POST("/process", h.processMonth)
		recurring.DELETE("/:recurringEntryID", h.deleteRecurringEntry)
	}
}

// createRecurringEntry godoc
// @Summary Create a recurring template
// @Description Creates a template that materializes one ledger entry per active month; day-of-month is clamped into [1,31]
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   template body dto.CreateRecurringEntryRequest true "Template details"
// @Success 201 {object} dto.RecurringEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to create template"
// @Router /recurring [post]
func (h *recurringHandler) createRecurringEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateRecurringEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecurringEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.recurringService.CreateRecurringEntry(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create recurring template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RecurringEntryResponse{
		RecurringEntryID: entry.RecurringEntryID,
		Amount:           entry.Amount,
		Description:      entry.Description,
		CategoryID:       entry.CategoryID,
		Account:          entry.Account,
		Type:             entry.Type,
		DayOfMonth:       entry.DayOfMonth,
		StartMonth:       entry.StartMonth,
		EndMonth:         entry.EndMonth,
	})
}

// listRecurringEntries godoc
// @Summary List recurring templates
// @Description Returns all templates hydrated with category names and next-occurrence previews
// @Tags recurring
// @Produce  json
// @Success 200 {array} dto.RecurringEntryResponse
// @Failure 500 {object} map[string]string "Failed to list templates"
// @Router /recurring [get]
func (h *recurringHandler) listRecurringEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	entries, err := h.recurringService.ListRecurringEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recurring templates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringResponse(entries))
}

// processMonth godoc
// @Summary Materialize recurring templates for a month
// @Description Creates one ledger entry per template active in the month. Idempotent: re-running a month skips entries that already exist.
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   request body dto.ProcessRecurringRequest true "Month to process"
// @Success 200 {object} map[string]int "Number of entries created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to process month"
// @Router /recurring/process [post]
func (h *recurringHandler) processMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ProcessRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProcessMonth", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.recurringService.ProcessMonth(c.Request.Context(), req.Month, req.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownMember) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
			return
		}
		logger.Error("Failed to process recurring templates", slog.String("month", req.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process month"})
		return
	}

	logger.Info("Recurring templates processed", slog.String("month", req.Month), slog.Int("created", created))
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// deleteRecurringEntry godoc
// @Summary Delete a recurring template
// @Description Removes a template; entries it already produced are left in place
// @Tags recurring
// @Produce  json
// @Param   recurringEntryID path string true "Recurring template ID"
// @Param   memberId query string true "Member identifier"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Missing member id"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to delete template"
// @Router /recurring/{recurringEntryID} [delete]
func (h *recurringHandler) deleteRecurringEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	recurringEntryID := c.Param("recurringEntryID")

	memberID := c.Query("memberId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memberId query parameter is required"})
		return
	}

	err := h.recurringService.DeleteRecurringEntry(c.Request.Context(), recurringEntryID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		default:
			logger.Error("Failed to delete recurring template", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
