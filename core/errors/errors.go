// File: errors.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used by all safetext
//              packages. Carries an error code, contextual details, and an
//              optional cause while remaining compatible with Go's standard
//              error interface and errors.Is/errors.As unwrapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with structured errors

package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Error represents a structured error with a code, details, and a cause
type Error struct {
	message string
	cause   error
	code    Code
	details map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context.
// If err is already a structured Error, its code is preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	code := CodeUnknown
	if stxErr, ok := err.(*Error); ok {
		code = stxErr.code
	}

	return &Error{
		message: message,
		cause:   err,
		code:    code,
		details: make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if stxErr, ok := err.(*Error); ok {
		return stxErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if the error
// is not a safetext Error
func GetCode(err error) Code {
	if stxErr, ok := err.(*Error); ok {
		return stxErr.code
	}
	return CodeUnknown
}
