// internal/common/errors/errors.go

// Package errors provides standardized error handling for the search
// service boundary.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeInvalidPriceRange is the single client-visible validation
	// failure: an explicitly supplied, inverted price range.
	ErrCodeInvalidPriceRange ErrorCode = "INVALID_PRICE_RANGE"

	ErrCodeListingFetchFailed ErrorCode = "LISTING_FETCH_FAILED"
	ErrCodeCacheUnavailable   ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeSearchTimeout      ErrorCode = "SEARCH_TIMEOUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code to the response status the boundary
// should emit. Only the inverted price range is the caller's fault.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeInvalidPriceRange:
		return http.StatusBadRequest
	case ErrCodeSearchTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewInvalidPriceRangeError creates the non-retryable validation error.
func NewInvalidPriceRangeError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPriceRange,
		Message:   "minPrice cannot exceed maxPrice",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewListingFetchFailedError creates a retryable data-access error.
func NewListingFetchFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeListingFetchFailed,
		Message:   "Failed to fetch candidate listings",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Search result cache is unavailable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a retryable timeout error.
func NewSearchTimeoutError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "Search did not complete in time",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
