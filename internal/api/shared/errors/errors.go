package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeLocked           ErrorCode = "locked"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Status returns the HTTP status of the error code
func (e *APIError) Status() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeLocked:
		return http.StatusLocked
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeServiceError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewLockedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeLocked,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// domainErrors maps ledger sentinels onto API errors; the first match wins
var domainErrors = []struct {
	err  error
	code ErrorCode
}{
	{domain.ErrInvalidAmount, ErrCodeBadRequest},
	{domain.ErrInvalidAccountKind, ErrCodeBadRequest},
	{domain.ErrPartnerNotFound, ErrCodeNotFound},
	{domain.ErrWithdrawalNotFound, ErrCodeNotFound},
	{domain.ErrCycleNotFound, ErrCodeNotFound},
	{domain.ErrNoActiveCycle, ErrCodeNotFound},
	{domain.ErrAccountFrozen, ErrCodeLocked},
	{domain.ErrCyclicReferral, ErrCodeConflict},
	{domain.ErrReferrerAlreadySet, ErrCodeConflict},
	{domain.ErrInsufficientBalance, ErrCodeConflict},
	{domain.ErrInvalidTransition, ErrCodeConflict},
	{domain.ErrSettlementInProgress, ErrCodeConflict},
	{domain.ErrCycleAlreadySettled, ErrCodeConflict},
	{domain.ErrPartnerAlreadyExists, ErrCodeConflict},
	{domain.ErrEventPayloadMismatch, ErrCodeConflict},
}

// FromError converts err to an APIError. Known domain failures keep their message,
// anything else becomes a database error carrying message.
func FromError(err error, message string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return &APIError{Code: d.code, Message: message, Details: err.Error()}
		}
	}

	return NewDatabaseError(message, err.Error())
}
