package dto

import "net/http"

// Error codes returned by the API. Handlers map domain errors onto these
// through GetHTTPStatus; codes not listed here default to 500.
const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeAlreadyExists        = "ALREADY_EXISTS"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeProductUnavailable   = "PRODUCT_UNAVAILABLE"
	ErrCodeLineNotFound         = "LINE_NOT_FOUND"
	ErrCodeTooManyDistinctItems = "TOO_MANY_DISTINCT_ITEMS"
	ErrCodeEmailTaken           = "EMAIL_TAKEN"
	ErrCodeInvalidResetToken    = "INVALID_RESET_TOKEN"
	ErrCodeOAuthAccount         = "OAUTH_ACCOUNT"
	ErrCodeInvalidProduct       = "INVALID_PRODUCT"
	ErrCodeEmptyOrder           = "EMPTY_ORDER"
	ErrCodeInvalidStatus        = "INVALID_STATUS"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeInvalidPayment       = "INVALID_PAYMENT"
	ErrCodeRequestTooLarge      = "REQUEST_TOO_LARGE"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeAlreadyExists:        http.StatusConflict,
	ErrCodeInvalidInput:         http.StatusBadRequest,
	ErrCodeUnauthorized:         http.StatusUnauthorized,
	ErrCodeForbidden:            http.StatusForbidden,
	ErrCodeInvalidCredentials:   http.StatusUnauthorized,
	ErrCodeProductUnavailable:   http.StatusNotFound,
	ErrCodeLineNotFound:         http.StatusNotFound,
	ErrCodeTooManyDistinctItems: http.StatusBadRequest,
	ErrCodeEmailTaken:           http.StatusConflict,
	ErrCodeInvalidResetToken:    http.StatusBadRequest,
	ErrCodeOAuthAccount:         http.StatusBadRequest,
	ErrCodeInvalidProduct:       http.StatusBadRequest,
	ErrCodeEmptyOrder:           http.StatusBadRequest,
	ErrCodeInvalidStatus:        http.StatusBadRequest,
	ErrCodeInvalidTransition:    http.StatusUnprocessableEntity,
	ErrCodeInvalidPayment:       http.StatusBadRequest,
	ErrCodeRequestTooLarge:      http.StatusRequestEntityTooLarge,
	ErrCodeInternal:             http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code.
// Unknown codes map to 500 so new domain errors fail loudly.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
