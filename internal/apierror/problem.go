// Package apierror provides RFC 9457 Problem Details error response types
// for consistent API error handling across the moodpath backend.
package apierror

// ProblemDetails represents an RFC 9457 Problem Details response.
// See https://www.rfc-editor.org/rfc/rfc9457.html
type ProblemDetails struct {
	// RFC 9457 standard fields
	Type     string `json:"type"`               // URI reference identifying the problem type
	Title    string `json:"title"`              // Short human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation specific to this occurrence
	Instance string `json:"instance,omitempty"` // URI reference for this specific occurrence

	// Extension fields for the moodpath API
	RequestID   string       `json:"request_id,omitempty"`   // Correlation ID from X-Request-ID header
	UserMessage string       `json:"user_message,omitempty"` // UI-safe message for client display
	RetryAfter  *int         `json:"retry_after,omitempty"`  // Seconds until retry allowed (429)
	Errors      []FieldError `json:"errors,omitempty"`       // Validation errors list (multiple fields)
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`          // Field name that failed validation
	Message string `json:"message"`        // Human-readable error message
	Code    string `json:"code,omitempty"` // Machine-readable error code
}

// Error implements the error interface for ProblemDetails.
func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// Error type URIs following the urn:moodpath:error:* pattern.
const (
	TypeValidation = "urn:moodpath:error:validation"
	TypeNotFound   = "urn:moodpath:error:not_found"
	TypeRateLimit  = "urn:moodpath:error:rate_limit"
	TypeInternal   = "urn:moodpath:error:internal"
	TypeBadRequest = "urn:moodpath:error:bad_request"
)

// Titles for each error type
const (
	TitleValidation = "Validation Error"
	TitleNotFound   = "Resource Not Found"
	TitleRateLimit  = "Rate Limit Exceeded"
	TitleInternal   = "Internal Server Error"
	TitleBadRequest = "Bad Request"
)
