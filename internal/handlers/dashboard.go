package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/apierror"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/service"
)

// DashboardHandler aggregates the metrics and insight state the
// dashboard view renders in one request
type DashboardHandler struct {
	studyService        service.StudyService
	healthService       service.HealthService
	financeService      service.FinanceService
	intelligenceService service.IntelligenceService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	studyService service.StudyService,
	healthService service.HealthService,
	financeService service.FinanceService,
	intelligenceService service.IntelligenceService,
) *DashboardHandler {
	return &DashboardHandler{
		studyService:        studyService,
		healthService:       healthService,
		financeService:      financeService,
		intelligenceService: intelligenceService,
	}
}

// GetDashboard returns all three domain summaries, the insight summary
// and the most urgent insight
// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.Ctx(ctx)

	study, err := h.studyService.GetMetrics(ctx)
	if err != nil {
		log.Error("failed to compute study metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	health, err := h.healthService.GetMetrics(ctx)
	if err != nil {
		log.Error("failed to compute health metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	finance, err := h.financeService.GetMetrics(ctx)
	if err != nil {
		log.Error("failed to compute finance metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	insights, err := h.intelligenceService.RunAnalysis(ctx)
	if err != nil {
		log.Error("failed to run analysis", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		Study:     *study,
		Health:    *health,
		Finance:   *finance,
		Summary:   service.Summarize(insights),
		Highlight: service.FirstHighSeverity(insights),
	})
}
