package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/apierror"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/service"
)

// defaultListDays is the window for list endpoints when ?days= is absent
const defaultListDays = 30

// StudyHandler handles study session HTTP requests
type StudyHandler struct {
	studyService service.StudyService
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(studyService service.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

// CreateSession logs a new study session
// POST /api/v1/study-sessions
func (h *StudyHandler) CreateSession(c *gin.Context) {
	var req models.CreateStudySessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), err.Error()))
		return
	}

	session, err := h.studyService.LogSession(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to log study session", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessions returns recent study sessions
// GET /api/v1/study-sessions?days=30
func (h *StudyHandler) GetSessions(c *gin.Context) {
	sessions, err := h.studyService.GetRecent(c.Request.Context(), queryDays(c))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list study sessions", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetMetrics returns the rolling study summary
// GET /api/v1/metrics/study
func (h *StudyHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.studyService.GetMetrics(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute study metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetFocusAlert returns the standalone focus-drop finding
// GET /api/v1/alerts/focus
func (h *StudyHandler) GetFocusAlert(c *gin.Context) {
	finding, err := h.studyService.DetectFocusIssues(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to detect focus issues", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if finding == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, finding)
}

// queryDays parses the ?days= query parameter, falling back to the
// default window on absence or garbage
func queryDays(c *gin.Context) int {
	raw := c.Query("days")
	if raw == "" {
		return defaultListDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return defaultListDays
	}
	return days
}
