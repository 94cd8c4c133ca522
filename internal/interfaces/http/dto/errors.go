package dto

import "net/http"

// Stable error codes surfaced to clients. Clients branch on the code; the
// message is display text only.
const (
	// Authentication
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       = "MISSING_TOKEN"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"

	// Campaigns and tracking
	ErrCodeInvalidBrief      = "INVALID_BRIEF"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInvalidOrUsedCode = "INVALID_OR_USED_CODE"

	// General
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeRateLimited = "RATE_LIMITED"
	ErrCodeInternal    = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeDuplicateEmail:     http.StatusConflict,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeMissingToken:       http.StatusUnauthorized,
	ErrCodeInvalidToken:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,

	ErrCodeInvalidBrief:      http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeInvalidOrUsedCode: http.StatusUnprocessableEntity,

	// Codes raised by shop registration validation
	"INVALID_SHOP_NAME": http.StatusBadRequest,
	"INVALID_EMAIL":     http.StatusBadRequest,
	"INVALID_PASSWORD":  http.StatusBadRequest,
	"INVALID_PHONE":     http.StatusBadRequest,

	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeRateLimited: http.StatusTooManyRequests,
	ErrCodeInternal:    http.StatusInternalServerError,

	// Codes raised by shared domain errors
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"FORBIDDEN":            http.StatusForbidden,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
