package jdoc

import (
	"testing"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: `1`, match: `1`, res: true},
	{in: `0`, match: `1`, res: false},
	{in: `1`, match: `1.0`, res: true},
	{in: `100`, match: `1e2`, res: true},
	{in: `[1]`, match: `[1]`, res: true},
	{in: `[]`, match: `[]`, res: true},
	{in: `[1]`, match: `[2]`, res: false},
	{in: `[1]`, match: `[1,2]`, res: false},
	{in: `[1]`, match: `"hello"`, res: false},
	{in: `{"a":"b","c":"d"}`, match: `{"a":"b"}`, res: true},
	{in: `{"a":"b"}`, match: `{"a":"b","c":"d"}`, res: false},
	{in: `{"a":"b"}`, match: `null`, res: true},
	{in: `{"a":"b"}`, match: `{"a":null}`, res: true},
	{in: `{"a":"b"}`, match: `{}`, res: true},
	{in: `"1"`, match: `1`, res: false},
	{in: `true`, match: `true`, res: true},
	{in: `false`, match: `true`, res: false},
	{in: `{"l":[{"x":1,"y":2}]}`, match: `{"l":[{"y":2}]}`, res: true},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		t.Run(mt.in+"~"+mt.match, func(t *testing.T) {
			res, err := Match(mustParse(t, mt.in), mustParse(t, mt.match))
			if err != nil {
				t.Fatal(err)
			}
			if res != mt.res {
				t.Errorf("got %t, want %t", res, mt.res)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		match, doc, want string
	}{
		{`{"a":null}`, `{"a":{"deep":1},"b":2}`, `{"a":{"deep":1}}`},
		{`{"a":{"x":null}}`, `{"a":{"x":1,"y":2},"b":2}`, `{"a":{"x":1}}`},
		{`[{"k":2}]`, `[{"k":1,"v":"a"},{"k":2,"v":"b"}]`, `[{"k":2}]`},
		{`[null,null]`, `[5]`, `[5]`},
		{`1`, `{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.match, func(t *testing.T) {
			got := Trim(mustParse(t, tt.match), mustParse(t, tt.doc))
			if wire(got) != tt.want {
				t.Errorf("got %s, want %s", wire(got), tt.want)
			}
		})
	}
}
