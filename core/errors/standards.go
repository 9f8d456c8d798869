// File: standards.go
// Title: Error Standards for safetext Modules
// Description: Provides standardized error constructors for the safetext
//              packages so that every failure class (parse failure, invalid
//              input, read failure) is reported with a consistent code and
//              detail set across modules.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"
)

// ParseError creates a standardized parse failure error
func ParseError(module, operation, input, expected string) *Error {
	return New(fmt.Sprintf("%s.%s: cannot parse input", module, operation)).
		WithCode(parseErrorCode(operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// InputError creates a standardized input validation error
func InputError(module, operation, expected string) *Error {
	return New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(CodeInvalidInput).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"expected":  expected,
		})
}

// ReadError creates a standardized read failure error
func ReadError(module, operation string, cause error) *Error {
	return Wrap(cause, fmt.Sprintf("%s.%s: read failed", module, operation)).
		WithCode(CodeStrzReadFailed).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}

// parseErrorCode maps a parse operation to its specific failure code
func parseErrorCode(operation string) Code {
	switch {
	case strings.Contains(operation, "length"):
		return CodeNumzLengthExceeded
	case strings.Contains(operation, "range") || strings.Contains(operation, "overflow"):
		return CodeNumzOverflow
	default:
		return CodeNumzSyntax
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if stxErr, ok := err.(*Error); ok {
		if mod, exists := stxErr.details["module"]; exists {
			return mod == module
		}
	}
	return false
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if stxErr, ok := err.(*Error); ok {
		if op, exists := stxErr.details["operation"]; exists {
			if opStr, ok := op.(string); ok {
				return opStr
			}
		}
	}
	return ""
}
