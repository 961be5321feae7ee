package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// ErrorCode identifies the kind of failure surfaced to the dashboard.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	ErrCodeInvalidToken   ErrorCode = "INVALID_TOKEN"

	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidPhone     ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"

	// Business errors
	ErrCodeAvailabilityConflict ErrorCode = "AVAILABILITY_CONFLICT"
	ErrCodeNotFound             ErrorCode = "NOT_FOUND"
	ErrCodeInvalidOperation     ErrorCode = "INVALID_OPERATION"

	// Upstream errors
	ErrCodeNetwork     ErrorCode = "NETWORK_ERROR"
	ErrCodeAPI         ErrorCode = "API_ERROR"
	ErrCodeUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
)

// AppError is the error type handed to controllers.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is reports whether err is or wraps target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// HasCode reports whether err carries the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// APIError is a non-2xx reply from the villa API.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

// NewAPIError builds an APIError with the most readable message found in body.
func NewAPIError(status int, body []byte) *APIError {
	return &APIError{
		Status:  status,
		Message: ExtractMessage(status, body),
		Body:    body,
	}
}

// ExtractMessage picks the message shown to the user: the "error" field,
// then "message", then "detail", then the first field error, then the status text.
func ExtractMessage(status int, body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload) > 0 {
		for _, key := range []string{"error", "message", "detail"} {
			if s, ok := payload[key].(string); ok && s != "" {
				return s
			}
		}

		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if msg := firstString(payload[k]); msg != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(http.StatusText(status)); text != "" {
		return text
	}
	return "An unexpected error occurred"
}

func firstString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []interface{}:
		if len(val) > 0 {
			return firstString(val[0])
		}
	}
	return ""
}

// GetAPIError extracts the APIError from err, or nil
func GetAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

var (
	ErrSessionExpired  = NewAppError(ErrCodeSessionExpired, "Session expired, please log in again", nil)
	ErrNotLoggedIn     = NewAppError(ErrCodeUnauthorized, "Not logged in", nil)
	ErrVillaNotFound   = NewAppError(ErrCodeNotFound, "Villa not found", nil)
	ErrBookingNotFound = NewAppError(ErrCodeNotFound, "Booking not found", nil)
)
