package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the client. Only authentication-class errors
// ever cause a global session transition; everything else is surfaced
// at the call site.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeNetworkUnreachable = "NETWORK_UNREACHABLE"
	CodeDecodeFailed       = "DECODE_FAILED"
	CodeServerError        = "SERVER_ERROR"
)

// APIError standardizes errors surfaced by the client.
type APIError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     map[string][]string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError constructs an APIError.
func NewAPIError(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string, fields map[string][]string) error {
	return &APIError{Code: CodeValidationFailed, Message: message, HTTPStatus: http.StatusBadRequest, Fields: fields}
}

func NewUnauthorized(message string) error {
	return NewAPIError(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbidden(message string) error {
	return NewAPIError(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFound(resource string) error {
	return NewAPIError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// NewNetworkError marks a request for which no response was received.
func NewNetworkError(err error) error {
	return &APIError{Code: CodeNetworkUnreachable, Message: "server unreachable", Err: err}
}

// NewDecodeError marks a response body whose shape was not recognized.
func NewDecodeError(message string, err error) error {
	return &APIError{Code: CodeDecodeFailed, Message: message, Err: err}
}

func NewServerError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return NewAPIError(CodeServerError, message, status)
}

// FromResponse classifies a non-2xx response into the client taxonomy.
// The backend speaks DRF conventions: either {"detail": "..."} or, for
// validation failures, a map of field name to message list.
func FromResponse(status int, body []byte) error {
	message := extractDetail(body)

	switch {
	case status == http.StatusBadRequest:
		fields := extractFieldErrors(body)
		if message == "" {
			message = "validation failed"
		}
		return NewValidationError(message, fields)
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "authentication required"
		}
		return NewUnauthorized(message)
	case status == http.StatusForbidden:
		if message == "" {
			message = "permission denied"
		}
		return NewForbidden(message)
	case status == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return NewAPIError(CodeNotFound, message, status)
	default:
		return NewServerError(status, message)
	}
}

// ToAPIError converts generic errors to APIError.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Code: CodeServerError, Message: "request failed", Err: err}
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func IsNetwork(err error) bool        { return HasCode(err, CodeNetworkUnreachable) }
func IsAuthentication(err error) bool { return HasCode(err, CodeUnauthorized) }
func IsAuthorization(err error) bool  { return HasCode(err, CodeForbidden) }
func IsValidation(err error) bool     { return HasCode(err, CodeValidationFailed) }

func extractDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}

// extractFieldErrors normalizes DRF validation bodies. Values arrive as
// either a single string or a list of strings per field.
func extractFieldErrors(body []byte) map[string][]string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string][]string)
	for key, val := range raw {
		if key == "detail" || key == "message" {
			continue
		}
		switch v := val.(type) {
		case string:
			fields[key] = []string{v}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					fields[key] = append(fields[key], s)
				}
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
