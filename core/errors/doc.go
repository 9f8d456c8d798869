// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors provides structured error handling for the
//              safetext library with error codes, contextual details, and
//              standardized constructors shared by all packages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

// Package errors provides structured error handling for the safetext library.
//
// Every failure reported by a safetext package carries a Code that callers
// can branch on without inspecting message text, plus a detail map naming
// the module and operation that produced it. The Error type participates in
// standard errors.Is/errors.As unwrapping through its cause chain.
//
// Failure classes are created through the standards constructors rather than
// ad hoc:
//
//	err := errors.ParseError(errors.ModuleNumz, "parse_decimal", input, "decimal digits")
//	if errors.HasCode(err, errors.CodeNumzSyntax) {
//	    // reject the field
//	}
//
// Not-found results from search and tokenize operations are plain return
// values, never errors; this package covers only genuine failures (parse
// failures, invalid inputs, and read errors).
package errors
