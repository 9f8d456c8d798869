// File: token.go
// Title: Re-entrant Buffer Tokenizer
// Description: Implements a re-entrant tokenizer over bounded buffers. The
//              cursor lives in a caller-held Tokenizer value instead of
//              hidden package state, so independent tokenizing sequences can
//              be interleaved, nested, or run on separate goroutines safely.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with re-entrant tokenizing

package strz

// Tokenizer splits a bounded buffer into tokens. The zero value is ready
// for Reset; each Tokenizer tracks exactly one splitting sequence and two
// sequences never interfere as long as they use distinct Tokenizer values
// over distinct buffers.
//
// Next mutates the buffer: the delimiter ending each token is overwritten
// with a zero terminator, exactly like the classic re-entrant tokenizer
// this type replaces.
type Tokenizer struct {
	buf []byte
	pos int
}

// Reset (re)starts the tokenizer on buf, positioning the cursor at the
// beginning. Tokenizing covers the buffer content up to its terminator.
func (t *Tokenizer) Reset(buf []byte) {
	t.buf = buf
	t.pos = 0
}

// Next returns the next maximal run of bytes not contained in delims, or
// (nil, false) when the sequence is exhausted. Runs of consecutive
// delimiters are skipped, so no empty tokens are produced. The returned
// slice aliases the buffer and stays valid until the buffer is reused.
//
// The delimiter set may differ from call to call within one sequence.
func (t *Tokenizer) Next(delims string) ([]byte, bool) {
	buf := t.buf
	i := t.pos

	for i < len(buf) && buf[i] != 0 && isDelim(buf[i], delims) {
		i++
	}
	if i >= len(buf) || buf[i] == 0 {
		t.pos = i
		return nil, false
	}

	start := i
	for i < len(buf) && buf[i] != 0 && !isDelim(buf[i], delims) {
		i++
	}
	token := buf[start:i]

	if i < len(buf) && buf[i] != 0 {
		buf[i] = 0
		i++
	}
	t.pos = i

	return token, true
}

// isDelim reports whether b is one of the delimiter bytes.
func isDelim(b byte, delims string) bool {
	for i := 0; i < len(delims); i++ {
		if b == delims[i] {
			return true
		}
	}
	return false
}
