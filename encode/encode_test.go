package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

const sample = `{"a":1,"b":[true,null,"x"],"e":{},"f":[]}`

func TestEncodeIndented(t *testing.T) {
	y, err := parse.Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(y, buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": 1,
  "b": [
    true,
    null,
    "x"
  ],
  "e": {},
  "f": []
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeOptions(t *testing.T) {
	y, err := parse.Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		opts []encode.EncodeOption
		want string
	}{
		{"wire", []encode.EncodeOption{encode.EncodeWire(true)}, sample},
		{"indent 4", []encode.EncodeOption{encode.EncodeIndent(4)},
			"{\n    \"a\": 1,\n    \"b\": [\n        true,\n        null,\n        \"x\"\n    ],\n    \"e\": {},\n    \"f\": []\n}"},
		{"indent 0", []encode.EncodeOption{encode.EncodeIndent(0)},
			"{\n\"a\": 1,\n\"b\": [\ntrue,\nnull,\n\"x\"\n],\n\"e\": {},\n\"f\": []\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encode.MustString(y, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), "null"},
		{ir.FromBool(false), "false"},
		{&ir.Node{Type: ir.NumberType, Text: "1.50e+3"}, "1.50e+3"},
		{ir.FromString("a\"b\n"), `"a\"b\n"`},
		{ir.FromString("née"), `"née"`},
	}
	for _, tt := range tests {
		if got := encode.MustString(tt.node); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestEscapedSurrogates(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{{Key: "smile😀", Val: ir.FromString("é😀")}})
	got := encode.MustString(y, encode.EncodeWire(true), encode.EncodeEscaped(true))
	want := `{"smile\ud83d\ude00":"\u00e9\ud83d\ude00"}`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	back, err := parse.Parse([]byte(got), parse.LooseNames())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(y, back) {
		t.Errorf("reparse gave %s", encode.MustString(back, encode.EncodeWire(true)))
	}
	if back.Values[0].Text != "é😀" {
		t.Errorf("value %q", back.Values[0].Text)
	}
}

func TestRoundTrip(t *testing.T) {
	root := ir.Null()
	steps := []struct {
		path string
		set  func(*ir.Node) error
	}{
		{"name", func(y *ir.Node) error { return y.SetString("line\nbreak \"q\" \\ tab\t ctl\x01") }},
		{"n.int", func(y *ir.Node) error { return y.SetInt64(-42) }},
		{"n.float", func(y *ir.Node) error { return y.SetFloat(6.02214076e23) }},
		{"n.big", func(y *ir.Node) error { return y.SetNumber("123456789012345678901234567890.000") }},
		{"list[3].ok", func(y *ir.Node) error { return y.SetBool(true) }},
		{"list[1]", func(y *ir.Node) error { return y.SetUTF8([]byte("日本語")) }},
		{"bytes", func(y *ir.Node) error { return y.SetBytesBase64([]byte{0, 0xff}) }},
		{"first name", func(y *ir.Node) error { return y.SetNull() }},
		{"empty", func(y *ir.Node) error { _, err := y.Create("[0]"); return err }},
	}
	for _, s := range steps {
		if _, err := ir.Assign(root, s.path, s.set); err != nil {
			t.Fatalf("%s: %v", s.path, err)
		}
	}
	for _, opts := range [][]encode.EncodeOption{
		nil,
		{encode.EncodeWire(true)},
		{encode.EncodeEscaped(true)},
		{encode.EncodeIndent(3), encode.EncodeEscaped(true)},
	} {
		text := encode.MustString(root, opts...)
		back, err := parse.Parse([]byte(text))
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}
		if !ir.Equal(root, back) {
			t.Errorf("round trip changed the tree:\n%s\n%s", text, encode.MustString(back))
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	y, err := parse.Parse([]byte(`{"z":1.50,"b":["x",true,null,"12"],"c":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(y, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	if strings.Index(text, "z:") > strings.Index(text, "b:") {
		t.Errorf("member order lost:\n%s", text)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, text)
	}
	want := map[string]any{
		"z": 1.5,
		"b": []any{"x", true, nil, "12"},
		"c": map[string]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestColors(t *testing.T) {
	c := encode.NewColors()
	c.Map = map[encode.Colorable]func(string, ...any) string{
		{Type: ir.StringType, Attr: encode.ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got := encode.MustString(ir.FromSlice([]*ir.Node{ir.FromString("s"), ir.FromInt(1)}),
		encode.EncodeColors(c), encode.EncodeWire(true))
	if got != `[<"s">,1]` {
		t.Errorf("got %s", got)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := encode.FormatFromOpts(); f.IsYAML() {
		t.Errorf("default format %v", f)
	}
	f := encode.FormatFromOpts(encode.EncodeIndent(4), encode.EncodeFormat(format.YAMLFormat))
	if !f.IsYAML() {
		t.Errorf("got %v, want yaml", f)
	}
}
