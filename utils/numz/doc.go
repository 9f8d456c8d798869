// File: doc.go
// Title: Package Documentation for numz
// Description: Package numz provides bounded integer-text conversion for
//              the safetext library: fixed-width decimal formatting with
//              saturation, strict whole-span decimal parsing, and a
//              legacy-compatible hexadecimal parser.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

// Package numz provides bounded integer-text conversion.
//
// Overview
//
// Three conversion families live here:
//
//   - FormatFixed / FormatFixedString render an unsigned integer
//     right-justified in a field of exact width, space-padded, and saturate
//     the whole field to '*' when the number does not fit. Saturation is a
//     visual sentinel, never an error return.
//   - ParseDecimal converts a whole span of text to a signed 64-bit
//     integer, rejecting spans over 20 bytes, trailing garbage, and values
//     outside the 64-bit range.
//   - ParseHex replicates a nonstandard legacy hexadecimal parser for
//     drop-in compatibility: signs and spaces may appear anywhere, the last
//     sign wins, the accumulator wraps without an overflow check, and the
//     extra result flag reports that signs or spaces were present.
//
// Parse failures are reported through the structured errors of
// core/errors, so callers can branch on codes such as NUMZ_SYNTAX or
// NUMZ_OVERFLOW:
//
//	v, err := numz.ParseDecimal(field)
//	if errors.HasCode(err, errors.CodeNumzOverflow) {
//	    // out of 64-bit range
//	}
//
// The package holds no state and performs no I/O; every function is safe
// for concurrent use.
package numz
