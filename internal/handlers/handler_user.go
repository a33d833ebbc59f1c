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

// userHandler handles HTTP requests related to household users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers routes related to household users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("/resolve", h.resolveUser)
	}
}

// resolveUser godoc
// @Summary Resolve a household member to a user record
// @Description Maps a household member id to its user record, creating the record on first use
// @Tags users
// @Accept  json
// @Produce  json
// @Param   member body dto.ResolveUserRequest true "Member identifier"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown household member"
// @Failure 500 {object} map[string]string "Failed to resolve user"
// @Router /users/resolve [post]
func (h *userHandler) resolveUser(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ResolveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.EnsureHouseholdUser(c.Request.Context(), req.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownMember) {
			logger.Warn("Unknown household member", slog.String("member_id", req.MemberID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Unknown household member"})
			return
		}
		logger.Error("Failed to resolve household user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
