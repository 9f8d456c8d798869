// File: search.go
// Title: String Comparison and Search
// Description: Implements case-insensitive comparison and search, prefix
//              checking, last-occurrence search, and tail views over
//              read-only string inputs. Case handling is ASCII-only by
//              contract; not-found is reported as a plain value, never an
//              error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with search primitives

package strz

import "strings"

// foldByte lowercases an ASCII letter; every other byte passes through.
func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// CompareFold compares a and b byte-lexicographically with ASCII case
// folding. It returns a negative, zero, or positive value exactly like a
// standard string comparison; when one string is a prefix of the other the
// shorter orders first.
func CompareFold(a, b string) int {
	for i := 0; ; i++ {
		var c1, c2 byte
		if i < len(a) {
			c1 = foldByte(a[i])
		}
		if i < len(b) {
			c2 = foldByte(b[i])
		}
		if c1 != c2 {
			return int(c1) - int(c2)
		}
		if c1 == 0 {
			return 0
		}
	}
}

// HasPrefix reports whether s begins with prefix, comparing bytes in
// original case. The empty prefix always matches.
func HasPrefix(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// IndexFold returns the index of the first occurrence of needle in haystack
// ignoring ASCII case, or -1 when there is none. An empty needle matches at
// the start of haystack.
func IndexFold(haystack, needle string) int {
	if len(needle) == 0 {
		return 0
	}

	first := foldByte(needle[0])
	for i := 0; i < len(haystack); i++ {
		if foldByte(haystack[i]) != first {
			continue
		}
		if len(haystack)-i < len(needle) {
			// Haystack exhausted before a full match can complete.
			return -1
		}
		j := 1
		for ; j < len(needle); j++ {
			if foldByte(haystack[i+j]) != foldByte(needle[j]) {
				break
			}
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last occurrence of needle in haystack,
// comparing case-sensitively, or -1 when there is none. An empty needle
// matches at len(haystack), one past the last byte.
func LastIndex(haystack, needle string) int {
	if len(needle) == 0 {
		return len(haystack)
	}

	last := -1
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return last
		}
		last = from + i
		from = last + 1
	}
}

// LastN returns a view of the final n bytes of s. When n meets or exceeds
// the length of s (or is negative), the whole string is returned; the
// operation never fails.
func LastN(s string, n int) string {
	if n < 0 || len(s) < n {
		return s
	}
	return s[len(s)-n:]
}
