package parse

import (
	"github.com/tuneforge/scl-format/go-scl/token"
)

type parseOpts struct {
	incomplete bool
}

func (o *parseOpts) ScanOpts() []token.Option {
	if o.incomplete {
		return []token.Option{token.Incomplete()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// Incomplete marks the buffer as possibly extendable: a parse that runs
// off its end fails with token.ErrIncomplete rather than a hard error,
// so a caller feeding chunks can retry with more input appended.
func Incomplete() ParseOption {
	return func(o *parseOpts) { o.incomplete = true }
}
