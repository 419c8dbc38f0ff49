package dto

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(status int, path, method, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       path,
		Method:     method,
		Message:    message,
	}
}
