package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/jdoc/ir"
)

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"yes", false},
	}
	for _, tt := range tests {
		t.Setenv("JDOC_DEBUG_TEST", tt.val)
		if got := boolEnv("JDOC_DEBUG_TEST"); got != tt.want {
			t.Errorf("boolEnv(%q) = %t, want %t", tt.val, got, tt.want)
		}
	}
}

func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	saved := out
	out = &buf
	defer func() { out = saved }()

	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"any", func() { LogAny(map[string]any{"b": 1, "a": []any{true, nil}}) }, "{\"a\":[true,null],\"b\":1}\n"},
		{"string", func() { LogAny("x") }, "\"x\"\n"},
		{"unencodable", func() { LogAny(make(chan int)) }, ""},
		{"node", func() { LogNode("got", ir.FromSlice([]*ir.Node{ir.FromInt(1)})) }, "got: [1]\n"},
		{"nil node", func() { LogNode("got", nil) }, "got: <nil>\n"},
		{"logf", func() { Logf("n=%d\n", 2) }, "n=2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()
			if tt.want == "" {
				if buf.Len() == 0 {
					t.Error("nothing written")
				}
				return
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}
