package apierror

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem writes a ProblemDetails response to the gin context
// with the correct Content-Type header.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 Bad Request response for binding
// or validation failures.
func NewValidationError(requestID, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:      TypeValidation,
		Title:     TitleValidation,
		Status:    http.StatusBadRequest,
		Detail:    detail,
		RequestID: requestID,
	}
}

// NewBadRequestError creates a 400 Bad Request response for malformed requests.
func NewBadRequestError(requestID, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:      TypeBadRequest,
		Title:     TitleBadRequest,
		Status:    http.StatusBadRequest,
		Detail:    detail,
		RequestID: requestID,
	}
}

// NewInternalError creates a 500 Internal Server Error response.
// Internal error details are intentionally hidden from the client;
// log the actual error server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:      TypeInternal,
		Title:     TitleInternal,
		Status:    http.StatusInternalServerError,
		Detail:    "An unexpected error occurred",
		RequestID: requestID,
	}
}
