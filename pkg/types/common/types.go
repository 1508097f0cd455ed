// Package common defines cross-cutting data types shared by every layer of
// synthspec.  No logic lives here — only plain data types that are safe to
// import from any layer without creating circular dependencies.
package common

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for a UUID v4 identifier.
type ID string

// NewID generates a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Validate checks that the ID is a well-formed UUID.
func (id ID) Validate() error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("invalid ID format %q: %w", string(id), err)
	}
	return nil
}

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// APIResponse is the generic wrapper for all API responses.
type APIResponse[T any] struct {
	Success   bool         `json:"success"`
	Data      T            `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// OK constructs a successful APIResponse carrying data.
func OK[T any](requestID string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success:   true,
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}

// Fail constructs a failed APIResponse carrying an error payload.
func Fail[T any](requestID string, detail ErrorDetail) APIResponse[T] {
	return APIResponse[T]{
		Success:   false,
		Error:     &detail,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}
