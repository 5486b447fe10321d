package token

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tuneforge/scl-format/go-scl/debug"
)

// Scanner provides line-oriented scanning over an in-memory buffer. By
// default the buffer is taken to be the whole document; with Incomplete
// the buffer may still be extended by the caller, and any scan that
// would need bytes past the current end reports ErrIncomplete instead
// of a hard failure.
//
// A Scanner holds no state other than its offset into the buffer, so a
// failed scan of one alternative leaves the offset where that
// alternative started only if the method documents it; see Float.
type Scanner struct {
	d          []byte
	off        int
	doc        *PosDoc
	extendable bool
}

type Option func(*Scanner)

// Incomplete marks the buffer as possibly extendable: more bytes may
// arrive after the current end.
func Incomplete() Option {
	return func(s *Scanner) { s.extendable = true }
}

func NewScanner(d []byte, opts ...Option) *Scanner {
	s := &Scanner{d: d, doc: &PosDoc{d: d}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Pos reports the current scan position.
func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.off)
}

// incompleteLine reports whether the line at the scan point has no
// terminator yet in an extendable buffer. Tokens never span lines, so
// no token on such a line can be judged complete.
func (s *Scanner) incompleteLine() bool {
	return s.extendable && bytes.IndexByte(s.d[s.off:], '\n') < 0
}

// TakeLine consumes up to and including the next line terminator and
// returns the line content with surrounding whitespace trimmed. The
// final line of a complete buffer may be unterminated; in extendable
// mode a missing terminator is ErrIncomplete, since the rest of the
// line may still arrive.
func (s *Scanner) TakeLine() ([]byte, error) {
	i := bytes.IndexByte(s.d[s.off:], '\n')
	if i < 0 {
		if s.extendable {
			return nil, IncompleteErr(s.Pos())
		}
		line := bytes.TrimSpace(s.d[s.off:])
		s.off = len(s.d)
		return line, nil
	}
	line := bytes.TrimSpace(s.d[s.off : s.off+i])
	s.off += i + 1
	s.doc.nl(s.off - 1)
	if debug.Scan() {
		debug.Logf("take line %q", line)
	}
	return line, nil
}

// SkipComments discards consecutive comment lines, those whose first
// byte is '!', and reports how many were skipped. It stops without
// consuming anything of the first non-comment line.
func (s *Scanner) SkipComments() (int, error) {
	n := 0
	for s.off < len(s.d) && s.d[s.off] == '!' {
		s.off++
		c, err := s.TakeLine()
		if err != nil {
			return n, err
		}
		if debug.Scan() {
			debug.Logf("skip comment %q", c)
		}
		n++
	}
	return n, nil
}

// Space0 skips optional horizontal whitespace.
func (s *Scanner) Space0() {
	for s.off < len(s.d) && horizSpace(s.d[s.off]) {
		s.off++
	}
}

// Uint64 consumes an unsigned 64-bit decimal literal. A sign is not
// part of the grammar here: a leading '-' fails the scan rather than
// being coerced.
func (s *Scanner) Uint64() (uint64, error) {
	if s.incompleteLine() {
		return 0, IncompleteErr(s.Pos())
	}
	n := asciiDigits(s.d[s.off:])
	if n == 0 {
		return 0, ExpectedErr("unsigned integer", s.Pos())
	}
	v, err := strconv.ParseUint(string(s.d[s.off:s.off+n]), 10, 64)
	if err != nil {
		return 0, NewScanErr(fmt.Errorf("%w: %v", ErrNumber, err), s.Pos())
	}
	s.off += n
	return v, nil
}

// Float consumes an optionally signed decimal literal with optional
// fraction and exponent. The literal must end at a token boundary,
// horizontal whitespace or a line end; a byte such as '/' directly
// after the digits fails the scan. On failure the offset is unchanged,
// so the caller can try another alternative at the same position.
func (s *Scanner) Float() (float32, error) {
	if s.incompleteLine() {
		return 0, IncompleteErr(s.Pos())
	}
	n := float(s.d[s.off:])
	if n == 0 {
		return 0, ExpectedErr("number", s.Pos())
	}
	end := s.off + n
	if end < len(s.d) && !boundary(s.d[end]) {
		return 0, UnexpectedErr(string(s.d[end]), s.doc.Pos(end))
	}
	v, err := strconv.ParseFloat(string(s.d[s.off:end]), 32)
	if err != nil {
		return 0, NewScanErr(fmt.Errorf("%w: %v", ErrNumber, err), s.Pos())
	}
	s.off = end
	return float32(v), nil
}

// Byte consumes the literal byte c.
func (s *Scanner) Byte(c byte) error {
	if s.incompleteLine() {
		return IncompleteErr(s.Pos())
	}
	if s.off >= len(s.d) || s.d[s.off] != c {
		return ExpectedErr(strconv.Quote(string(c)), s.Pos())
	}
	s.off++
	return nil
}
