// File: doc.go
// Title: Package Documentation for strz
// Description: Package strz provides bounded, zero-terminated buffer
//              operations for the safetext library: protected copy and
//              concatenation, in-place and copying transforms, search and
//              comparison, bounded line reading, and re-entrant tokenizing.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

// Package strz provides bounded operations over zero-terminated caller
// buffers.
//
// Overview
//
// The package is the Go home of a family of protected string routines that
// replace unsafe, unbounded equivalents (unchecked copy, concatenation,
// tokenizing with hidden global state). A bounded buffer is an ordinary
// caller-owned []byte whose capacity is its slice length and whose content
// runs to the first zero byte. Every writing operation obeys two rules:
//
//   - It never writes past the slice length.
//   - It leaves the buffer terminated, except when the capacity is zero and
//     there is no room even for the terminator - then it writes nothing.
//
// Truncation is silent; a caller that must detect it compares Len of the
// result against the source length. A nil buffer is the "absent buffer"
// case and every mutating operation treats it as a safe no-op.
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Bounded copy/concat: Copy, Concat, AppendUint, Len (strz.go)
//   - Transforms: Trim, RemoveChar, ReplaceChar, Substring, case
//     conversion, and their bounded copying variants (transform.go)
//   - Search and comparison: CompareFold, HasPrefix, IndexFold, LastIndex,
//     LastN (search.go)
//   - Line reading: ReadLine over an io.ByteReader (reader.go)
//   - Tokenizing: the re-entrant Tokenizer (token.go)
//
// Case handling is ASCII-only by contract; bytes outside the ASCII letters
// always pass through unchanged. Unicode-aware processing is explicitly out
// of scope.
//
// Usage Examples
//
// Bounded copy and concatenation:
//
//	var buf [16]byte
//	strz.Copy(buf[:], "hello")
//	strz.Concat(buf[:], ", world")
//	strz.AppendUint(buf[:], 42)
//	// buf content: "hello, world42" (truncated to fit, always terminated)
//
// Re-entrant tokenizing, including nested sequences:
//
//	line := []byte("a,b,,c\x00")
//	var tok strz.Tokenizer
//	tok.Reset(line)
//	for t, ok := tok.Next(","); ok; t, ok = tok.Next(",") {
//	    process(t) // "a", "b", "c" - empty runs are skipped
//	}
//
// Bounded line reading:
//
//	r := bufio.NewReader(conn)
//	var line [128]byte
//	for {
//	    err := strz.ReadLine(line[:], r)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    handle(line[:strz.Len(line[:])])
//	}
//
// Concurrency
//
// There is no package-level state. Any operation may run concurrently with
// any other as long as the buffers involved are not shared between the
// concurrent calls; the Tokenizer cursor is a caller-held value, which is
// precisely what makes interleaved and concurrent tokenizing sequences
// safe.
package strz
