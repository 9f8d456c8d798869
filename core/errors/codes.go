// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the safetext library. The codes enable
//              structured error handling and precise failure branching by
//              callers without string matching on messages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with library error codes

package errors

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the safetext library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInvalidInput Code = "INVALID_INPUT"

	// numz specific - text/number conversion failures
	CodeNumzSyntax         Code = "NUMZ_SYNTAX"
	CodeNumzLengthExceeded Code = "NUMZ_LENGTH_EXCEEDED"
	CodeNumzOverflow       Code = "NUMZ_OVERFLOW"

	// strz specific - bounded buffer operations
	CodeStrzReadFailed Code = "STRZ_READ_FAILED"
)

// Module identifiers for error categorization
const (
	ModuleStrz = "strz"
	ModuleNumz = "numz"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
