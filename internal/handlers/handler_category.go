package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
	"github.com/homeledger/homeledger-backend/internal/dto"
	"github.com/homeledger/homeledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: cs,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.POST("/defaults", h.seedDefaultCategories)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a new category
// @Description Creates a category; if the name is already taken, returns the existing category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownMember) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
			return
		}
		logger.Error("Failed to create category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Returns all categories, default categories first, then alphabetical
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// seedDefaultCategories godoc
// @Summary Seed the default category set
// @Description Applies the built-in default category table, skipping names that already exist
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   member body dto.ResolveUserRequest true "Member identifier"
// @Success 200 {array} dto.CategoryResponse "Newly created categories"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to seed categories"
// @Router /categories/defaults [post]
func (h *categoryHandler) seedDefaultCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ResolveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SeedDefaultCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.categoryService.SeedDefaultCategories(c.Request.Context(), domain.DefaultCategories, req.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownMember) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
			return
		}
		logger.Error("Failed to seed default categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed categories"})
		return
	}

	logger.Info("Seeded default categories", slog.Int("created", len(created)))
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(created))
}

// updateCategory godoc
// @Summary Update a category
// @Description Patches the name and/or emoji of a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to update category"
// @Router /categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	categoryID := c.Param("categoryID")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			logger.Error("Failed to update category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category; blocked while ledger entries still reference it
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   memberId query string true "Member identifier"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Missing member id"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category still referenced"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	categoryID := c.Param("categoryID")

	memberID := c.Query("memberId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "memberId query parameter is required"})
		return
	}

	err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownMember):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Category is still referenced by ledger entries"})
		default:
			logger.Error("Failed to delete category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
