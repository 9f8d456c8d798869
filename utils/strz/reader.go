// File: reader.go
// Title: Bounded Line Reading
// Description: Implements ReadLine, a bounded single-line reader over an
//              io.ByteReader. Line terminators are stripped, end-of-stream
//              is distinguished from an empty line, and an over-long line is
//              drained so the next read starts on a real line boundary.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with bounded line reading

package strz

import (
	"io"

	"github.com/msto63/safetext/core/errors"
)

// ReadLine reads one line from r into dst. Reading stops after a newline or
// once len(dst)-1 bytes are held; the stored content is cut at the first CR
// or LF, so any of "\r", "\n", or "\r\n" endings are stripped.
//
// The return value distinguishes three outcomes:
//   - nil: a line (possibly empty) was read into dst.
//   - io.EOF: the stream ended before any byte of this line was read.
//   - a wrapped read error for any other stream failure before the first
//     byte; dst content is not meaningful in that case.
//
// When the line fills the buffer without a newline, the remainder of the
// physical line up to and including the next newline is read and discarded,
// so that a subsequent ReadLine starts at the next real line instead of the
// tail of the truncated one.
func ReadLine(dst []byte, r io.ByteReader) error {
	if r == nil || len(dst) == 0 {
		return errors.InputError(errors.ModuleStrz, "read_line",
			"non-nil reader and buffer capacity of at least one byte")
	}

	// A one-byte buffer holds only the terminator: the content is always
	// empty and the whole physical line is drained.
	if len(dst) == 1 {
		dst[0] = 0
		read := false
		for {
			b, err := r.ReadByte()
			if err != nil {
				if read {
					return nil
				}
				if err == io.EOF {
					return io.EOF
				}
				return errors.ReadError(errors.ModuleStrz, "read_line", err)
			}
			read = true
			if b == '\n' {
				return nil
			}
		}
	}

	n := 0
	sawNewline := false
	for n < len(dst)-1 {
		b, err := r.ReadByte()
		if err != nil {
			if n == 0 {
				if err == io.EOF {
					return io.EOF
				}
				return errors.ReadError(errors.ModuleStrz, "read_line", err)
			}
			break
		}
		dst[n] = b
		n++
		if b == '\n' {
			sawNewline = true
			break
		}
	}

	// Cut at the first CR or LF; the terminator bytes are not content.
	end := n
	for i := 0; i < n; i++ {
		if dst[i] == '\r' || dst[i] == '\n' {
			end = i
			break
		}
	}
	dst[end] = 0

	// Buffer filled mid-line: discard through the next newline so the
	// following call does not read the tail of this line.
	if n == len(dst)-1 && !sawNewline {
		for {
			b, err := r.ReadByte()
			if err != nil || b == '\n' {
				break
			}
		}
	}

	return nil
}
