// File: strz.go
// Title: Bounded Buffer Copy and Concatenation
// Description: Implements the foundational bounded operations over
//              zero-terminated caller buffers: length scan, protected copy,
//              protected concatenation, and protected integer append. Every
//              other copying operation in the package builds on these.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with bounded copy/concat

package strz

// Len returns the content length of a bounded buffer: the index of the first
// zero byte, or len(buf) when the buffer holds no terminator. A nil buffer
// has length 0.
func Len(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}
	return len(buf)
}

// Copy copies at most len(dst)-1 bytes of s into dst and always terminates
// the result with a zero byte. A zero-capacity (or nil) dst is left
// completely untouched; there is no room even for the terminator.
func Copy(dst []byte, s string) {
	if len(dst) == 0 {
		return
	}

	n := len(dst) - 1
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		dst[i] = s[i]
	}
	dst[n] = 0
}

// Concat appends s to the existing content of dst, truncating so that
// content plus terminator never exceeds len(dst). A capacity of one or less
// leaves dst untouched.
func Concat(dst []byte, s string) {
	if len(dst) <= 1 {
		return
	}

	d := Len(dst)
	if d >= len(dst) {
		// Unterminated buffer is already full; nothing can be appended
		// and there is no slot left to terminate in.
		return
	}

	n := len(dst) - 1 - d
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		dst[d+i] = s[i]
	}
	dst[d+n] = 0
}

// AppendUint formats n as plain decimal text (no sign, no padding) and
// appends it to dst with Concat semantics.
func AppendUint(dst []byte, n uint32) {
	// 10 digits hold the largest uint32 (4294967295).
	var tmp [10]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = '0' + byte(n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	Concat(dst, string(tmp[i:]))
}
