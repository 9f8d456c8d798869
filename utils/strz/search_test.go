// File: search_test.go
// Title: Unit Tests for Comparison and Search
// Description: Unit tests for case-insensitive comparison and search,
//              prefix checking, last-occurrence search, and tail views.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package strz

import "testing"

func TestCompareFold(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		sign int // -1, 0, +1
	}{
		{"equal same case", "foo", "foo", 0},
		{"equal different case", "Foo", "foo", 0},
		{"equal all caps", "FOO", "foo", 0},
		{"less", "Foo", "Fop", -1},
		{"greater", "foz", "FOY", 1},
		{"prefix orders first", "foo", "food", -1},
		{"longer orders last", "food", "FOO", 1},
		{"both empty", "", "", 0},
		{"empty vs content", "", "a", -1},
		{"case folds only ascii", "a", "A", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareFold(tt.a, tt.b)
			switch {
			case tt.sign == 0 && got != 0:
				t.Errorf("CompareFold(%q, %q) = %d; want 0", tt.a, tt.b, got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("CompareFold(%q, %q) = %d; want negative", tt.a, tt.b, got)
			case tt.sign > 0 && got <= 0:
				t.Errorf("CompareFold(%q, %q) = %d; want positive", tt.a, tt.b, got)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		prefix   string
		expected bool
	}{
		{"match", "path/to/file", "path", true},
		{"case sensitive", "Path", "path", false},
		{"empty prefix always matches", "anything", "", true},
		{"empty string empty prefix", "", "", true},
		{"prefix longer than string", "ab", "abc", false},
		{"full match", "abc", "abc", true},
		{"mismatch", "abc", "abd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPrefix(tt.s, tt.prefix); got != tt.expected {
				t.Errorf("HasPrefix(%q, %q) = %v; want %v", tt.s, tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected int
	}{
		{"exact match", "hello world", "world", 6},
		{"case folded match", "Hello World", "world", 6},
		{"needle in caps", "hello world", "WORLD", 6},
		{"first of several", "abAB", "ab", 0},
		{"empty needle matches start", "hello", "", 0},
		{"empty haystack empty needle", "", "", 0},
		{"not present", "hello", "xyz", -1},
		{"haystack exhausted mid-match", "wor", "world", -1},
		{"match at start", "Foobar", "foo", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexFold(tt.haystack, tt.needle); got != tt.expected {
				t.Errorf("IndexFold(%q, %q) = %d; want %d", tt.haystack, tt.needle, got, tt.expected)
			}
		})
	}
}

func TestLastIndex(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected int
	}{
		{"last of several", "a-b-c", "-", 3},
		{"single occurrence", "a-bc", "-", 1},
		{"overlapping matches", "aaaa", "aa", 2},
		{"case sensitive", "aAaA", "A", 3},
		{"not found", "abc", "x", -1},
		{"empty needle matches end", "hello", "", 5},
		{"empty haystack empty needle", "", "", 0},
		{"needle longer than haystack", "ab", "abc", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastIndex(tt.haystack, tt.needle); got != tt.expected {
				t.Errorf("LastIndex(%q, %q) = %d; want %d", tt.haystack, tt.needle, got, tt.expected)
			}
		})
	}
}

func TestLastN(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		n        int
		expected string
	}{
		{"tail", "hello", 3, "llo"},
		{"whole string", "hello", 5, "hello"},
		{"n larger than string", "hello", 99, "hello"},
		{"zero", "hello", 0, ""},
		{"negative yields whole string", "hello", -1, "hello"},
		{"empty string", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastN(tt.s, tt.n); got != tt.expected {
				t.Errorf("LastN(%q, %d) = %q; want %q", tt.s, tt.n, got, tt.expected)
			}
		})
	}
}
