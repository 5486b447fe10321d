package token

import (
	"errors"
	"testing"
)

func TestTakeLine(t *testing.T) {
	s := NewScanner([]byte("  first  \r\nsecond\nlast"))
	for i, want := range []string{"first", "second", "last"} {
		line, err := s.TakeLine()
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if string(line) != want {
			t.Errorf("line %d: got %q, expected %q", i, line, want)
		}
	}
	line, err := s.TakeLine()
	if err != nil {
		t.Fatalf("past end: %v", err)
	}
	if len(line) != 0 {
		t.Errorf("past end: got %q, expected empty", line)
	}
}

func TestTakeLineIncomplete(t *testing.T) {
	s := NewScanner([]byte("no terminator yet"), Incomplete())
	if _, err := s.TakeLine(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got %v, expected ErrIncomplete", err)
	}
}

func TestSkipComments(t *testing.T) {
	s := NewScanner([]byte("! first\n!second\nnot a comment\n"))
	n, err := s.SkipComments()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("got %d comments, expected 2", n)
	}
	line, err := s.TakeLine()
	if err != nil {
		t.Fatal(err)
	}
	if string(line) != "not a comment" {
		t.Errorf("got %q after comments", line)
	}
}

func TestSkipCommentsUnterminated(t *testing.T) {
	s := NewScanner([]byte("!only"))
	n, err := s.SkipComments()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("got %d comments, expected 1", n)
	}

	s = NewScanner([]byte("!only"), Incomplete())
	if _, err := s.SkipComments(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got %v, expected ErrIncomplete", err)
	}
}

func TestUint64(t *testing.T) {
	tests := []struct {
		in string
		v  uint64
		ok bool
	}{
		{in: "81/64\n", v: 81, ok: true},
		{in: "0\n", v: 0, ok: true},
		{in: "18446744073709551615\n", v: 18446744073709551615, ok: true},
		{in: "18446744073709551616\n"}, // one past max
		{in: "-3/2\n"},
		{in: "abc\n"},
		{in: "\n"},
		{in: ""},
	}
	for _, tst := range tests {
		v, err := NewScanner([]byte(tst.in)).Uint64()
		if tst.ok && err != nil {
			t.Errorf("%q: %v", tst.in, err)
			continue
		}
		if !tst.ok {
			if err == nil {
				t.Errorf("%q: got %d, expected error", tst.in, v)
			}
			continue
		}
		if v != tst.v {
			t.Errorf("%q: got %d, expected %d", tst.in, v, tst.v)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in string
		v  float32
		ok bool
	}{
		{in: "100.0\n", v: 100, ok: true},
		{in: "-5.25 \n", v: -5.25, ok: true},
		{in: "+7\n", v: 7, ok: true},
		{in: "1e3\n", v: 1000, ok: true},
		{in: "1.5E-2\n", v: 0.015, ok: true},
		{in: "150", v: 150, ok: true},           // unterminated final line
		{in: "100.0 cents\n", v: 100, ok: true}, // boundary at space
		{in: "3/2\n"},                           // '/' is not a float continuation
		{in: ".5\n"},                            // digits required before the dot
		{in: "5.\n"},                            // and after it
		{in: "abc\n"},
		{in: ""},
	}
	for _, tst := range tests {
		v, err := NewScanner([]byte(tst.in)).Float()
		if tst.ok && err != nil {
			t.Errorf("%q: %v", tst.in, err)
			continue
		}
		if !tst.ok {
			if err == nil {
				t.Errorf("%q: got %g, expected error", tst.in, v)
			}
			continue
		}
		if v != tst.v {
			t.Errorf("%q: got %g, expected %g", tst.in, v, tst.v)
		}
	}
}

func TestFloatFailureKeepsOffset(t *testing.T) {
	s := NewScanner([]byte("3/2\n"))
	if _, err := s.Float(); err == nil {
		t.Fatal("expected float to fail on 3/2")
	}
	v, err := s.Uint64()
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Fatalf("got %d, expected the scan to restart at 3", v)
	}
}

func TestNumberIncompleteLine(t *testing.T) {
	for _, in := range []string{"100", "100.", "-", "81"} {
		s := NewScanner([]byte(in), Incomplete())
		if _, err := s.Float(); !errors.Is(err, ErrIncomplete) {
			t.Errorf("Float %q: got %v, expected ErrIncomplete", in, err)
		}
		s = NewScanner([]byte(in), Incomplete())
		if _, err := s.Uint64(); !errors.Is(err, ErrIncomplete) {
			t.Errorf("Uint64 %q: got %v, expected ErrIncomplete", in, err)
		}
	}
}

func TestByte(t *testing.T) {
	s := NewScanner([]byte("/2\n"))
	if err := s.Byte('/'); err != nil {
		t.Fatal(err)
	}
	if err := s.Byte('/'); err == nil {
		t.Fatal("expected error on second '/'")
	}
}

func TestSpace0(t *testing.T) {
	s := NewScanner([]byte(" \t\r12\n"))
	s.Space0()
	v, err := s.Uint64()
	if err != nil {
		t.Fatal(err)
	}
	if v != 12 {
		t.Fatalf("got %d, expected 12", v)
	}
}

func TestErrPosition(t *testing.T) {
	s := NewScanner([]byte("ok line\nbad\n"))
	if _, err := s.TakeLine(); err != nil {
		t.Fatal(err)
	}
	_, err := s.Uint64()
	if err == nil {
		t.Fatal("expected error")
	}
	var se *ScanErr
	if !errors.As(err, &se) {
		t.Fatalf("got %T, expected *ScanErr", err)
	}
	if se.Pos.Line() != 1 {
		t.Errorf("got line %d, expected 1", se.Pos.Line())
	}
	if se.Pos.Col() != 0 {
		t.Errorf("got col %d, expected 0", se.Pos.Col())
	}
}
