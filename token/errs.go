package token

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete reports that the buffer ended before a required
	// token or terminator, without contradicting the grammar. More
	// input may resolve it; check with errors.Is.
	ErrIncomplete = errors.New("incomplete input")
	ErrNumber     = errors.New("number")
)

type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func NewScanErr(err error, p *Pos) *ScanErr {
	return &ScanErr{Err: err, Pos: *p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewScanErr(fmt.Errorf("unexpected %q", what), p)
}

func IncompleteErr(p *Pos) error {
	return NewScanErr(ErrIncomplete, p)
}
