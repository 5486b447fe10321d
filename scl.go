// Package scl parses musical tunings in the Scala .scl text format
// into a structured representation usable by synthesis or analysis
// code.
//
// An .scl file names a scale and lists its pitch intervals, each a
// frequency ratio such as 3/2 or a cents offset such as 700.0. The
// parser captures exactly what the file says: it does not reduce
// ratios, reject zero denominators, or otherwise judge the musical
// sanity of the result.
//
// Many files in the Scala archive are encoded in ISO-8859-1; decode
// such files to UTF-8 before handing their text to Parse.
package scl

import (
	"github.com/tuneforge/scl-format/go-scl/parse"
	"github.com/tuneforge/scl-format/go-scl/scale"
)

// Parse parses the text of an .scl file.
func Parse(text string) (*scale.Scale, error) {
	return parse.Parse([]byte(text))
}
