package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/csvimport"
	"github.com/homeledger/homeledger-backend/internal/dto"
	"github.com/homeledger/homeledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportFileSize caps uploaded CSV files at 10 MiB.
const maxImportFileSize = 10 << 20

// importHandler handles HTTP requests for bulk imports.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

// newImportHandler creates a new importHandler.
func newImportHandler(is portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{
		importService: is,
	}
}

// registerImportRoutes registers routes related to bulk imports.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := newImportHandler(importService)

	imports := rg.Group("/imports")
	{
		imports.POST("", h.importEntries)
		imports.POST("/file", h.importFile)
	}
}

// importEntries godoc
// @Summary Import normalized entries
// @Description Commits a batch of entries already normalized on the client. Row failures are reported per row and never abort the batch.
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   batch body dto.ImportExpensesRequest true "Import batch"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to import entries"
// @Router /imports [post]
func (h *importHandler) importEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ImportExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.importService.ImportExpenses(c.Request.Context(), domain.ImportSource(req.Source), dto.ToImportEntries(req.Entries), req.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownMember) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
			return
		}
		logger.Error("Failed to import entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import entries"})
		return
	}

	logger.Info("Import batch processed",
		slog.String("source", req.Source),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	c.JSON(http.StatusOK, result)
}

// importFile godoc
// @Summary Import a bank CSV export
// @Description Detects the CSV dialect (Monzo or Money Manager), normalizes the rows and commits them as one batch
// @Tags imports
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV export file"
// @Param   memberId formData string true "Member identifier"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} map[string]string "Missing file or unrecognized CSV structure"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to import file"
// @Router /imports/file [post]
func (h *importHandler) importFile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	memberID := c.PostForm("memberId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memberId form field is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	if fileHeader.Size > maxImportFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	source, entries, err := csvimport.Parse(file)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnrecognizedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized CSV structure. Please upload a Monzo or Money Manager export."})
			return
		}
		logger.Warn("Failed to parse uploaded CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse CSV: " + err.Error()})
		return
	}

	result, err := h.importService.ImportExpenses(c.Request.Context(), source, entries, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownMember) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
			return
		}
		logger.Error("Failed to import CSV entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import file"})
		return
	}

	logger.Info("CSV import processed",
		slog.String("source", string(source)),
		slog.String("filename", fileHeader.Filename),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	c.JSON(http.StatusOK, result)
}
