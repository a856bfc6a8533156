package dto

// SuccessResponse is the standard success envelope. Messages shown to end
// users are Arabic; Details carries the operation-specific payload.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// NewSuccessResponse creates a standard success response
func NewSuccessResponse(message string, details interface{}) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Message: message,
		Details: details,
	}
}
