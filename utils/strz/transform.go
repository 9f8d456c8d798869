// File: transform.go
// Title: In-Place and Copying String Transforms
// Description: Implements bounded-buffer transforms: whitespace trimming,
//              character removal and replacement, substring extraction, and
//              ASCII case conversion. In-place variants mutate the caller's
//              buffer; copying variants combine a bounded Copy with the
//              corresponding in-place transform.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with buffer transforms

package strz

// TrimMode selects which end(s) of the buffer content Trim removes
// whitespace from.
type TrimMode int

// Trim modes
const (
	TrimLeft TrimMode = iota
	TrimRight
	TrimBoth
)

// isSpace reports whether b is ASCII whitespace, matching the classic
// isspace() classification.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim removes whitespace from the buffer content in place. The left pass
// shifts the remainder down; the right pass truncates. TrimBoth applies
// left first, then right. A nil or empty buffer is a no-op.
func Trim(buf []byte, mode TrimMode) {
	n := Len(buf)
	if n == 0 {
		return
	}

	if mode == TrimLeft || mode == TrimBoth {
		start := 0
		for start < n && isSpace(buf[start]) {
			start++
		}
		if start > 0 {
			copy(buf, buf[start:n])
			n -= start
			buf[n] = 0
		}
	}

	if mode == TrimRight || mode == TrimBoth {
		end := n
		for end > 0 && isSpace(buf[end-1]) {
			end--
		}
		if end < len(buf) {
			buf[end] = 0
		}
	}
}

// TrimCopy bounded-copies s into dst and trims the copy in place.
func TrimCopy(dst []byte, s string, mode TrimMode) {
	Copy(dst, s)
	Trim(dst, mode)
}

// RemoveChar removes every occurrence of c from the buffer content in
// place, compacting the remainder leftward and re-terminating at the new
// length.
func RemoveChar(buf []byte, c byte) {
	n := Len(buf)
	j := 0
	for i := 0; i < n; i++ {
		if buf[i] != c {
			buf[j] = buf[i]
			j++
		}
	}
	if j < len(buf) {
		buf[j] = 0
	}
}

// ReplaceChar replaces every occurrence of from with to in the buffer
// content. When skipEnds is set, the first and last content positions are
// exempt even if they match. Content length never changes.
func ReplaceChar(buf []byte, from, to byte, skipEnds bool) {
	n := Len(buf)
	if n == 0 {
		return
	}

	last := n - 1
	for i := 0; i < n; i++ {
		if buf[i] == from && !(skipEnds && (i == 0 || i == last)) {
			buf[i] = to
		}
	}
}

// ReplaceCharCopy bounded-copies s into dst and performs the replacement on
// the copy.
func ReplaceCharCopy(dst []byte, s string, from, to byte, skipEnds bool) {
	Copy(dst, s)
	ReplaceChar(dst, from, to, skipEnds)
}

// Substring copies up to length bytes of s starting at byte offset start
// into dst, bounded by len(dst)-1, and terminates the result. A start at or
// beyond the end of s, or any negative argument, produces the empty result.
// The source is never read past its end.
func Substring(dst []byte, s string, start, length int) {
	if len(dst) == 0 {
		return
	}

	if start < 0 || length < 0 || start >= len(s) {
		dst[0] = 0
		return
	}

	n := len(s) - start
	if length < n {
		n = length
	}
	if max := len(dst) - 1; n > max {
		n = max
	}

	for i := 0; i < n; i++ {
		dst[i] = s[start+i]
	}
	dst[n] = 0
}

// ToUpper converts ASCII lowercase letters in the buffer content to
// uppercase in place. All other bytes pass through unchanged.
func ToUpper(buf []byte) {
	n := Len(buf)
	for i := 0; i < n; i++ {
		if buf[i] >= 'a' && buf[i] <= 'z' {
			buf[i] -= 'a' - 'A'
		}
	}
}

// ToLowerCopy bounded-copies s into dst, converting ASCII uppercase letters
// to lowercase on the way. All other bytes pass through unchanged.
func ToLowerCopy(dst []byte, s string) {
	if len(dst) == 0 {
		return
	}

	n := len(dst) - 1
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		dst[i] = b
	}
	dst[n] = 0
}
