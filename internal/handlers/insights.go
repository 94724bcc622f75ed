package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moodpath/backend/internal/apierror"
	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/service"
)

// InsightsHandler handles insight-related HTTP requests
type InsightsHandler struct {
	insightService service.InsightService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightService service.InsightService) *InsightsHandler {
	return &InsightsHandler{insightService: insightService}
}

// GetInsights returns the ranked insight list for the user
// GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightService.GenerateInsights(c.Request.Context(), userID(c))
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to generate insights", logger.Err(err), logger.String("user_id", userID(c)))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, insights)
}
