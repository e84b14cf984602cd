package dto

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewAPIResponse creates a success envelope with data
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// SuccessResponse represents a bare success message
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
