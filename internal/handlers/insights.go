package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/apierror"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/service"
)

// InsightsHandler handles cross-domain insight HTTP requests
type InsightsHandler struct {
	intelligenceService service.IntelligenceService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(intelligenceService service.IntelligenceService) *InsightsHandler {
	return &InsightsHandler{intelligenceService: intelligenceService}
}

// GetInsights runs an analysis cycle and returns the resulting insights
// GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.intelligenceService.RunAnalysis(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to run analysis", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights": insights,
		"summary":  service.Summarize(insights),
	})
}

// GetSummary returns severity counts for the current data
// GET /api/v1/insights/summary
func (h *InsightsHandler) GetSummary(c *gin.Context) {
	insights, err := h.intelligenceService.RunAnalysis(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to run analysis", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, service.Summarize(insights))
}
