package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

// reportingHandler handles HTTP requests for summaries and exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to summaries and exports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly/:month", h.getMonthlySummary)
		reports.GET("/export", h.exportExpenses)
	}
}

// getMonthlySummary godoc
// @Summary Get a monthly summary
// @Description Aggregates one calendar month: totals, net, counts, category and account breakdowns and a full daily series
// @Tags reports
// @Produce  json
// @Param   month path string true "Month in YYYY-MM format"
// @Success 200 {object} domain.MonthlySummary
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/monthly/{month} [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	month := c.Param("month")

	summary, err := h.reportingService.GetMonthlySummary(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build monthly summary", slog.String("month", month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// exportExpenses godoc
// @Summary Export all ledger entries as CSV
// @Description Streams every entry as a CSV attachment, newest first, with category names resolved
// @Tags reports
// @Produce  text/csv
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} map[string]string "Failed to export entries"
// @Router /reports/export [get]
func (h *reportingHandler) exportExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	rows, err := h.reportingService.ExportExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entries"})
		return
	}

	csvContent, err := gocsv.MarshalString(&rows)
	if err != nil {
		logger.Error("Failed to serialize export CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entries"})
		return
	}

	filename := fmt.Sprintf("expenses-export-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvContent))
}
