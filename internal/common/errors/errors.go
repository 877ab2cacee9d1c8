// Package errors provides standardized error handling for the scan pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	ErrCodeSourceTimeout     ErrorCode = "SOURCE_TIMEOUT"
	ErrCodeSourceDecode      ErrorCode = "SOURCE_DECODE_FAILED"

	ErrCodeNoRecordsFound  ErrorCode = "NO_RECORDS_FOUND"
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"

	ErrCodeAnalyticsDegraded ErrorCode = "ANALYTICS_DEGRADED"

	ErrCodeCacheError   ErrorCode = "CACHE_ERROR"
	ErrCodeTimeoutError ErrorCode = "TIMEOUT_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable request validation error.
// This is the only error class that fails a scan outright.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Scan request failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSourceUnavailableError creates a retryable upstream directory error.
func NewSourceUnavailableError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSourceUnavailable,
		Message:   fmt.Sprintf("Source '%s' unavailable", source),
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"source": source},
		Timestamp: time.Now().UTC(),
	}
}

// NewSourceTimeoutError creates a non-retryable per-call timeout error.
// The pipeline drops the source and continues rather than retrying.
func NewSourceTimeoutError(source string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSourceTimeout,
		Message:   fmt.Sprintf("Source '%s' exceeded its call deadline", source),
		Details:   "call exceeded the per-source timeout",
		Retryable: false,
		Metadata:  map[string]interface{}{"source": source},
		Timestamp: time.Now().UTC(),
	}
}

// NewSourceDecodeError creates a retryable payload decoding error.
func NewSourceDecodeError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSourceDecode,
		Message:   fmt.Sprintf("Source '%s' returned an undecodable payload", source),
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"source": source},
		Timestamp: time.Now().UTC(),
	}
}

// NewNoRecordsFoundError reports that every source came back empty.
func NewNoRecordsFoundError(location, industry string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoRecordsFound,
		Message:   "No usable business records from any source",
		Details:   fmt.Sprintf("location: %s, industry: %s", location, industry),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedRecordError reports a single dropped record, never a failed scan.
func NewMalformedRecordError(source, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRecord,
		Message:   "Record dropped during normalization",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"source": source},
		Timestamp: time.Now().UTC(),
	}
}

// NewAnalyticsDegradedError annotates a calculator that fell back to defaults.
func NewAnalyticsDegradedError(calculator, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAnalyticsDegraded,
		Message:   fmt.Sprintf("Calculator '%s' ran with degraded inputs", calculator),
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"calculator": calculator},
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheError creates a retryable cache backend error.
func NewCacheError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheError,
		Message:   fmt.Sprintf("Cache %s failed", op),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTimeoutError creates a retryable generic timeout error.
func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimeoutError,
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSourceUnavailable,
		ErrCodeSourceDecode,
		ErrCodeCacheError:
		return 3

	case ErrCodeTimeoutError:
		return 2

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SOURCE"):
		return "SOURCE"
	case strings.Contains(codeStr, "RECORD"):
		return "RECORD"
	case strings.Contains(codeStr, "ANALYTICS"):
		return "ANALYTICS"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
