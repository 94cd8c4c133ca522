package dto

// ErrorInfo carries the machine-readable error code and display message
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses. Success responses
// are returned as bare resource bodies.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}
