package scl_test

import (
	"fmt"
	"log"
	"testing"

	scl "github.com/tuneforge/scl-format/go-scl"
)

func TestParse(t *testing.T) {
	s, err := scl.Parse("! meanquar.scl\n1/4-comma meantone scale\n3\n 76.04900\n 5/4\n 2/1\n")
	if err != nil {
		t.Fatal(err)
	}
	if s.Description != "1/4-comma meantone scale" {
		t.Errorf("got %q", s.Description)
	}
	if len(s.Notes) != 3 {
		t.Fatalf("got %d notes, expected 3", len(s.Notes))
	}
}

func ExampleParse() {
	s, err := scl.Parse(`! Example
5-limit just
4
  81/64
 4/3
 3/2
 2/1
`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s.Description)
	for _, n := range s.Notes {
		fmt.Println(n)
	}
	// Output:
	// 5-limit just
	// 81/64
	// 4/3
	// 3/2
	// 2/1
}
