package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodePolicyNotFound     = "POLICY_NOT_FOUND"
	CodeCustomerNotFound   = "CUSTOMER_NOT_FOUND"
	CodeAlreadyRenewed     = "ALREADY_RENEWED"
	CodeDuplicatePolicy    = "DUPLICATE_POLICY"
	CodeRenewalViaUpdate   = "RENEWAL_VIA_UPDATE"
	CodeInvalidBucket      = "INVALID_BUCKET"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidStage       = "INVALID_STAGE"
	CodeInvalidOutcome     = "INVALID_OUTCOME"
	CodeInvalidType        = "INVALID_TYPE"
	CodeRemarkRequired     = "REMARK_REQUIRED"
	CodeFollowUpRequired   = "FOLLOW_UP_REQUIRED"
	CodeInvalidFollowUp    = "INVALID_FOLLOW_UP"
	CodeInvalidTermDates   = "INVALID_TERM_DATES"
	CodeInvalidPremium     = "INVALID_PREMIUM"
	CodeInvalidPaymentMode = "INVALID_PAYMENT_MODE"
	CodeImportTooLarge     = "IMPORT_TOO_LARGE"
	CodeImportEmpty        = "IMPORT_EMPTY"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is a structured error carrying the HTTP status and machine
// code alongside the user-facing message.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error // internal cause, never exposed to the client
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound builds a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Conflict builds a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

// Forbidden builds a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

// ServiceUnavailable builds a 503 error keeping the internal cause
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError builds a sanitized 500 error - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
