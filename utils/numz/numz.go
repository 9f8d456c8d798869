// File: numz.go
// Title: Integer Text Conversion
// Description: Implements bounded integer-to-text and text-to-integer
//              conversion: fixed-width right-justified decimal formatting
//              with overflow saturation, whole-span decimal parsing with
//              64-bit range checking, and a drop-in compatible legacy
//              hexadecimal parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with numeric conversion

package numz

import (
	"github.com/msto63/safetext/core/errors"
)

// maxDecimalSpan is the longest span ParseDecimal accepts: the decimal form
// of the most negative 64-bit integer is 20 bytes including its sign.
const maxDecimalSpan = 20

// FormatFixed writes n as decimal text into dst, right-justified in exactly
// width bytes and left-padded with spaces, with a terminator at dst[width].
// When the decimal form of n is wider than width, the whole field is filled
// with '*' instead; consumers must treat a run of asterisks as an explicit
// "value did not fit" sentinel, not a parse error.
//
// The caller contract requires len(dst) >= width+1; a buffer too small for
// the field (or a negative width) leaves dst untouched.
func FormatFixed(dst []byte, n uint32, width int) {
	if width < 0 || len(dst) <= width {
		return
	}

	dst[width] = 0
	p := width
	for {
		if p == 0 {
			// Number too wide for the field, fill with stars.
			for i := 0; i < width; i++ {
				dst[i] = '*'
			}
			return
		}
		p--
		dst[p] = '0' + byte(n%10)
		n /= 10
		if n == 0 {
			break
		}
	}

	for p > 0 {
		p--
		dst[p] = ' '
	}
}

// FormatFixedString is the allocating convenience form of FormatFixed. It
// returns exactly width bytes; a non-positive width yields the empty string.
func FormatFixedString(n uint32, width int) string {
	if width <= 0 {
		return ""
	}
	buf := make([]byte, width+1)
	FormatFixed(buf, n, width)
	return string(buf[:width])
}

// ParseDecimal parses the entire span s as a signed base-10 integer. It
// succeeds only when the span is at most 20 bytes, every byte participates
// in a single integer literal (optional leading ASCII whitespace, one
// optional sign, then digits running to the end of the span), and the value
// fits a signed 64-bit integer. The empty span is the historically
// preserved trivial case and parses as 0.
//
// On failure the returned value is 0 and must not be consumed.
func ParseDecimal(s string) (int64, error) {
	if len(s) > maxDecimalSpan {
		return 0, errors.ParseError(errors.ModuleNumz, "parse_decimal_length", s,
			"at most 20 bytes")
	}

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	limit := uint64(1)<<63 - 1
	if neg {
		limit = 1 << 63
	}

	var value uint64
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := uint64(s[i] - '0')
		if value > (limit-d)/10 {
			return 0, errors.ParseError(errors.ModuleNumz, "parse_decimal_range", s,
				"value fitting a signed 64-bit integer")
		}
		value = value*10 + d
		digits++
		i++
	}

	// With no digits the conversion consumes nothing at all, so only the
	// empty span passes the whole-span check below.
	consumed := i
	if digits == 0 {
		consumed = 0
	}
	if consumed != len(s) {
		return 0, errors.ParseError(errors.ModuleNumz, "parse_decimal", s,
			"a single decimal literal spanning the whole input")
	}

	if neg {
		return -int64(value), nil
	}
	return int64(value), nil
}

// ParseHex parses the entire span s with the legacy hexadecimal rules:
//
//   - Hex digits accumulate into the value via shift-and-or, with no
//     overflow check; an over-long input wraps exactly like the parser this
//     one replaces.
//   - Spaces are accepted anywhere and only set the extra flag.
//   - '-' and '+' are accepted anywhere, not just at the start; the last
//     sign seen wins and is applied once after the whole span is consumed.
//     Signs also set the extra flag.
//   - Any other byte aborts with a failure.
//
// The empty span parses as 0 with extra false. These rules intentionally do
// not match conventional hex parsing ("0x" has no special meaning) and must
// stay byte-for-byte compatible.
func ParseHex(s string) (value int64, extra bool, err error) {
	sign := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			value = value<<4 | int64(c-'0')
		case c >= 'A' && c <= 'F':
			value = value<<4 | int64(c-'A'+10)
		case c >= 'a' && c <= 'f':
			value = value<<4 | int64(c-'a'+10)
		case c == ' ':
			extra = true
		case c == '-':
			sign = -1
			extra = true
		case c == '+':
			sign = 1
			extra = true
		default:
			return 0, false, errors.ParseError(errors.ModuleNumz, "parse_hex", s,
				"hex digits, spaces, and signs only")
		}
	}

	if sign == -1 {
		value = -value
	}
	return value, extra, nil
}

// isSpace reports whether b is ASCII whitespace, matching the classic
// isspace() classification the legacy conversion skipped over.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
