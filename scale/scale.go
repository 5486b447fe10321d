// Package scale defines the parsed representation of a Scala tuning: a
// description plus an ordered list of pitch intervals.
package scale

import (
	"fmt"
	"math"
)

type Kind int

const (
	RatioKind Kind = iota
	CentsKind
)

func (k Kind) String() string {
	switch k {
	case RatioKind:
		return "ratio"
	case CentsKind:
		return "cents"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Note is one scale degree, either a frequency ratio or a cents offset
// from the reference pitch. Fields are syntactic captures of what the
// file said: ratios are not reduced and denominators are not checked
// against zero.
type Note struct {
	Kind        Kind
	Numerator   uint64
	Denominator uint64
	Cents       float32
}

func Ratio(num, den uint64) Note {
	return Note{Kind: RatioKind, Numerator: num, Denominator: den}
}

func Cents(c float32) Note {
	return Note{Kind: CentsKind, Cents: c}
}

func (n Note) String() string {
	switch n.Kind {
	case RatioKind:
		return fmt.Sprintf("%d/%d", n.Numerator, n.Denominator)
	default:
		return fmt.Sprintf("%g", n.Cents)
	}
}

// Multiplier returns the note's frequency multiplier relative to the
// reference pitch. 1200 cents is one octave. A zero denominator gives
// +Inf; the format does not forbid it and neither does the parser.
func (n Note) Multiplier() float64 {
	if n.Kind == RatioKind {
		return float64(n.Numerator) / float64(n.Denominator)
	}
	return math.Exp2(float64(n.Cents) / 1200)
}

// Scale is a parsed tuning. Notes are in file order, ascending pitch by
// convention. A Scale is a value: nothing mutates it after the parse
// that produced it, and it holds no reference into the source text.
type Scale struct {
	Description string
	Notes       []Note
}

// Multipliers returns the frequency multiplier of every note, in order.
func (s *Scale) Multipliers() []float64 {
	res := make([]float64, len(s.Notes))
	for i, n := range s.Notes {
		res[i] = n.Multiplier()
	}
	return res
}
