package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moodpath/backend/internal/apierror"
	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/service"
)

// AchievementsHandler handles goal progress HTTP requests
type AchievementsHandler struct {
	achievementService service.AchievementService
}

// NewAchievementsHandler creates a new achievements handler
func NewAchievementsHandler(achievementService service.AchievementService) *AchievementsHandler {
	return &AchievementsHandler{achievementService: achievementService}
}

// GetAchievements returns stored progress for every goal
// GET /api/v1/achievements
func (h *AchievementsHandler) GetAchievements(c *gin.Context) {
	resp, err := h.achievementService.GetProgress(c.Request.Context(), userID(c))
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to load progress", logger.Err(err), logger.String("user_id", userID(c)))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshAchievements recomputes progress from the current records
// POST /api/v1/achievements/refresh
func (h *AchievementsHandler) RefreshAchievements(c *gin.Context) {
	resp, err := h.achievementService.UpdateProgress(c.Request.Context(), userID(c))
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to update progress", logger.Err(err), logger.String("user_id", userID(c)))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, resp)
}
