package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type debug struct {
	Scan  bool
	Parse bool
}

var d *debug

var sprintf = fmt.Sprintf

func init() {
	d = &debug{}
	d.Scan = boolEnv("SCL_DEBUG_SCAN")
	d.Parse = boolEnv("SCL_DEBUG_PARSE")
	if isatty.IsTerminal(os.Stderr.Fd()) {
		sprintf = color.YellowString
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}

// Logf writes one diagnostic line to stderr, colorized when stderr is
// a terminal.
func Logf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, sprintf(format, args...))
}
