package jdoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/ir"
)

func TestPatch(t *testing.T) {
	tests := []struct {
		name       string
		doc, patch string
		want       string
		err        bool
	}{
		{
			name:  "add replace remove",
			doc:   `{"a":1,"b":[1,2],"c":"x"}`,
			patch: `[{"op":"add","path":"/b/1","value":9},{"op":"replace","path":"/a","value":{"n":null}},{"op":"remove","path":"/c"}]`,
			want:  `{"a":{"n":null},"b":[1,9,2]}`,
		},
		{
			name:  "move copy",
			doc:   `{"a":{"x":1},"b":[]}`,
			patch: `[{"op":"copy","from":"/a/x","path":"/b/0"},{"op":"move","from":"/a","path":"/c"}]`,
			want:  `{"b":[1],"c":{"x":1}}`,
		},
		{
			name:  "failed test",
			doc:   `{"a":1}`,
			patch: `[{"op":"test","path":"/a","value":2}]`,
			err:   true,
		},
		{
			name:  "missing path",
			doc:   `{"a":1}`,
			patch: `[{"op":"remove","path":"/z"}]`,
			err:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.doc)
			before := wire(doc)
			got, err := Patch(doc, mustParse(t, tt.patch))
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %s", wire(got))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, mustParse(t, tt.want)) {
				t.Errorf("got %s, want %s", wire(got), tt.want)
			}
			if wire(doc) != before {
				t.Error("input modified")
			}
		})
	}
}

func TestPatchBytesBad(t *testing.T) {
	if _, err := PatchBytes(mustParse(t, `{}`), []byte(`{"op":`)); err == nil {
		t.Error("expected error")
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"c":2,"d":3},"e":[1]}`)
	got, err := MergePatch(doc, mustParse(t, `{"a":null,"b":{"c":9},"e":[2,3]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"b":{"c":9,"d":3},"e":[2,3]}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %s", wire(got))
	}
}

func TestCreateMergePatch(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":{"c":2,"d":3}}`)
	to := mustParse(t, `{"b":{"c":2,"d":4},"f":true}`)
	p, err := CreateMergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":null,"b":{"d":4},"f":true}`)
	if !ir.Equal(p, want) {
		t.Errorf("got %s", wire(p))
	}
	got, err := MergePatch(from, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(to, got) {
		t.Errorf("merge of created patch: %s", cmp.Diff(wire(to), wire(got)))
	}
}
