// Package apierror provides RFC 9457 Problem Details error response
// types for consistent API error handling across the backend.
package apierror

// Problem type URIs and titles used by this API.
const (
	TypeValidation = "https://lifementor.dev/errors/validation"
	TypeBadRequest = "https://lifementor.dev/errors/bad-request"
	TypeNotFound   = "https://lifementor.dev/errors/not-found"
	TypeInternal   = "https://lifementor.dev/errors/internal"

	TitleValidation = "Validation Failed"
	TitleBadRequest = "Bad Request"
	TitleNotFound   = "Not Found"
	TitleInternal   = "Internal Server Error"
)

// ProblemDetails represents an RFC 9457 Problem Details response.
// See https://www.rfc-editor.org/rfc/rfc9457.html
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`

	// Extension fields
	RequestID string       `json:"request_id,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error implements the error interface for ProblemDetails.
func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
