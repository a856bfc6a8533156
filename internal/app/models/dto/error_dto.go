package dto

// Stable error keys for programmatic handling; the accompanying message is
// the human-readable (Arabic) text.
const (
	ErrorCodeValidationFailed = "validation_error"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeConflict         = "conflict"
	ErrorCodeNotImplemented   = "not_implemented"
	ErrorCodeInternalServer   = "internal_error"
)

// ErrorResponse is the standard error envelope: a stable `error` key plus
// an Arabic human-readable message and optional request context for
// debuggability.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:   code,
		Message: message,
	}
}

// WithDetails attaches request context to the error response
func (e ErrorResponse) WithDetails(details interface{}) ErrorResponse {
	e.Details = details
	return e
}
