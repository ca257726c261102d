package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/apierror"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/service"
)

// FinanceHandler handles expense HTTP requests
type FinanceHandler struct {
	financeService service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// CreateExpense logs a new expense
// POST /api/v1/expenses
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), err.Error()))
		return
	}
	if !req.Amount.IsPositive() {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), "amount must be positive"))
		return
	}

	expense, err := h.financeService.LogExpense(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to log expense", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses returns recent expenses
// GET /api/v1/expenses?days=30
func (h *FinanceHandler) GetExpenses(c *gin.Context) {
	expenses, err := h.financeService.GetRecent(c.Request.Context(), queryDays(c))
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list expenses", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GetMetrics returns the rolling spending summary
// GET /api/v1/metrics/finance
func (h *FinanceHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.financeService.GetMetrics(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute finance metrics", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetOverspendingAlert returns the standalone overspending finding
// GET /api/v1/alerts/overspending
func (h *FinanceHandler) GetOverspendingAlert(c *gin.Context) {
	finding, err := h.financeService.DetectOverspending(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to detect overspending", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if finding == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, finding)
}
