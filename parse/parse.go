// Package parse implements the Scala .scl document grammar.
//
// An .scl document is line-oriented: comment lines starting with '!',
// one description line, one note-count line, then that many pitch
// lines, each a cents value or a ratio. Comments may appear before the
// description, before the count, and before any pitch line.
package parse

import (
	"errors"
	"fmt"

	"github.com/tuneforge/scl-format/go-scl/debug"
	"github.com/tuneforge/scl-format/go-scl/scale"
	"github.com/tuneforge/scl-format/go-scl/token"
)

// Parse reads one complete .scl document from d and returns the scale
// it defines. The input must already be decoded text; files from the
// Scala archive are commonly ISO-8859-1. Bytes remaining after the
// declared number of pitch lines are left unexamined, as real files
// carry footers the format does not forbid.
//
// The parse either fully succeeds or fails with no partial result.
func Parse(d []byte, opts ...ParseOption) (*scale.Scale, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	s := token.NewScanner(d, pOpts.ScanOpts()...)
	res, err := parseScale(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func parseScale(s *token.Scanner) (*scale.Scale, error) {
	if _, err := s.SkipComments(); err != nil {
		return nil, err
	}
	desc, err := s.TakeLine()
	if err != nil {
		return nil, err
	}
	if _, err := s.SkipComments(); err != nil {
		return nil, err
	}
	s.Space0()
	count, err := s.Uint64()
	if err != nil {
		return nil, err
	}
	if _, err := s.TakeLine(); err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("scl %q: %d notes declared", desc, count)
	}
	// The count comes straight from the file, so cap the preallocation
	// rather than trusting it.
	notes := make([]scale.Note, 0, min(count, 1024))
	for i := uint64(0); i < count; i++ {
		if _, err := s.SkipComments(); err != nil {
			return nil, err
		}
		n, err := note(s)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return &scale.Scale{
		Description: string(desc),
		Notes:       notes,
	}, nil
}

// note parses one pitch line. Cents notation is tried first: a bare
// number, signed or fractional, is cents, and the float scan stops
// cold on the '/' of ratio notation, so trial order alone keeps the
// two forms apart. The rest of the line after the pitch is discarded.
func note(s *token.Scanner) (scale.Note, error) {
	s.Space0()
	c, err := s.Float()
	if err == nil {
		if _, err := s.TakeLine(); err != nil {
			return scale.Note{}, err
		}
		return scale.Cents(c), nil
	}
	if errors.Is(err, token.ErrIncomplete) {
		return scale.Note{}, err
	}
	return ratio(s)
}

func ratio(s *token.Scanner) (scale.Note, error) {
	num, err := s.Uint64()
	if err != nil {
		return scale.Note{}, err
	}
	if err := s.Byte('/'); err != nil {
		return scale.Note{}, err
	}
	den, err := s.Uint64()
	if err != nil {
		return scale.Note{}, err
	}
	if _, err := s.TakeLine(); err != nil {
		return scale.Note{}, err
	}
	return scale.Ratio(num, den), nil
}
