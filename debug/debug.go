// Package debug holds diagnostics switched on by environment variables.
// Everything is off unless a JDOC_DEBUG_* variable parses as true.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

type debug struct {
	Parse  bool
	Assign bool
	Patch  bool
	Query  bool
	Eval   bool
}

var d *debug

// out receives every log line.
var out io.Writer = os.Stderr

func init() {
	d = &debug{}
	d.Parse = boolEnv("JDOC_DEBUG_PARSE")
	d.Assign = boolEnv("JDOC_DEBUG_ASSIGN")
	d.Patch = boolEnv("JDOC_DEBUG_PATCH")
	d.Query = boolEnv("JDOC_DEBUG_QUERY")
	d.Eval = boolEnv("JDOC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Assign() bool {
	return d.Assign
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

// LogNode writes msg and the compact text of y to stderr.
func LogNode(msg string, y *ir.Node) {
	if y == nil {
		fmt.Fprintf(out, "%s: <nil>\n", msg)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", msg, encode.MustString(y, encode.EncodeWire(true)))
}

// LogAny writes v to stderr as compact JSON, falling back to %v for values
// JSON cannot hold.
func LogAny(v any) {
	d, err := gojson.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
