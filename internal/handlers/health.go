package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/apierror"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/service"
)

// HealthHandler handles wellness check-in HTTP requests
type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// CreateCheckIn logs a new wellness check-in
// POST /api/v1/checkins
func (h *HealthHandler) CreateCheckIn(c *gin.Context) {
	var req models.CreateHealthCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), err.Error()))
		return
	}

	checkIn, err := h.healthService.LogCheckIn(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to log check-in", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, checkIn)
}

// GetCheckIns returns recent wellness check-ins
// GET /api/v1/checkins?days=30
func (h *HealthHandler) GetCheckIns(c *gin.Context) {
	checkIns, err := h.healthService.GetRecent(c.Request.Context(), queryDays(c))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list check-ins", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkins": checkIns})
}

// GetMetrics returns the rolling health summary
// GET /api/v1/metrics/health
func (h *HealthHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.healthService.GetMetrics(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute health metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetBurnoutAlert returns the standalone burnout finding
// GET /api/v1/alerts/burnout
func (h *HealthHandler) GetBurnoutAlert(c *gin.Context) {
	finding, err := h.healthService.DetectBurnout(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to detect burnout", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if finding == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, finding)
}
