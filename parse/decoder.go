package parse

import (
	"errors"
	"io"

	"github.com/tuneforge/scl-format/go-scl/scale"
	"github.com/tuneforge/scl-format/go-scl/token"
)

const decoderChunkSize = 4096

// Decoder incrementally parses an .scl document from an io.Reader,
// re-attempting the parse as chunks arrive. Each attempt re-scans the
// accumulated buffer from the start; .scl documents are small and
// line-oriented, so re-scanning costs less than keeping resumable
// parser state, and none is exposed.
//
// Example usage:
//
//	dec := parse.NewDecoder(conn)
//	scl, err := dec.Decode()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	use(scl)
type Decoder struct {
	r   io.Reader
	buf []byte
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads from the underlying reader until it has one complete
// scale definition or the input is exhausted or malformed. At EOF the
// buffer is all there will ever be, so a parse that still wants more
// input becomes a hard failure.
func (d *Decoder) Decode() (*scale.Scale, error) {
	chunk := make([]byte, decoderChunkSize)
	for {
		n, rerr := d.r.Read(chunk)
		d.buf = append(d.buf, chunk[:n]...)
		if rerr == io.EOF {
			return Parse(d.buf)
		}
		if rerr != nil {
			return nil, rerr
		}
		res, err := Parse(d.buf, Incomplete())
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, token.ErrIncomplete) {
			return nil, err
		}
	}
}
