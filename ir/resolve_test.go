package ir

import (
	"errors"
	"testing"

	"github.com/signadot/jdoc/ir/kpath"
)

// scenario builds {"a":1,"b":[true,null,"x"]}.
func scenario() *Node {
	return obj(
		kv("a", &Node{Type: NumberType, Text: "1"}),
		kv("b", FromSlice([]*Node{FromBool(true), Null(), FromString("x")})),
	)
}

func TestGet(t *testing.T) {
	root := scenario()
	tests := []struct {
		path string
		want string
		err  error
	}{
		{"a", "1", nil},
		{"b[2]", "x", nil},
		{"b[0]", "true", nil},
		{"b[5]", "", ErrNotFound},
		{"c", "", ErrNotFound},
		{"a.x", "", ErrIncorrect},
		{"a[0]", "", ErrIncorrect},
		{"b[1].x", "", ErrNotFound},
		{"b.x", "", ErrNotFound},
		{"a..", "", kpath.ErrEmptySegment},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := root.Get(tt.path)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Get(%q) error %v, want %v", tt.path, err, tt.err)
			}
			if err == nil && got.Text != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.path, got.Text, tt.want)
			}
		})
	}
	if n := root.Values[1].Len(); n != 3 {
		t.Errorf("read extended the array to %d", n)
	}
}

func TestResolveParent(t *testing.T) {
	root := scenario()
	node, parent, err := Resolve(root, kpath.MustParse("b[2]"), false)
	if err != nil {
		t.Fatal(err)
	}
	if node.Text != "x" || parent != root.Values[1] {
		t.Errorf("got node %q parent %v", node.Text, parent)
	}
	node, parent, err = Resolve(root, nil, false)
	if err != nil || node != root || parent != nil {
		t.Errorf("empty path: %v %v %v", node, parent, err)
	}
}

func TestResolveNilRoot(t *testing.T) {
	if _, _, err := Resolve(nil, kpath.MustParse("a"), false); !errors.Is(err, ErrNotFound) {
		t.Errorf("read: got %v", err)
	}
	node, parent, err := Resolve(nil, kpath.MustParse("a.b"), true)
	if err != nil {
		t.Fatal(err)
	}
	root := node.Root()
	if root.Type != ObjectType || parent.Name != "a" || node.KPath() != "a.b" {
		t.Errorf("created %s at %q", root.Type, node.KPath())
	}
}

func TestCreateIdempotent(t *testing.T) {
	root := Null()
	first, err := root.Create("x.y[2].z")
	if err != nil {
		t.Fatal(err)
	}
	second, err := root.Create("x.y[2].z")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second create made a new node")
	}
	if n := root.Len(); n != 1 {
		t.Errorf("root has %d members", n)
	}
	if n := root.Values[0].Len(); n != 1 {
		t.Errorf("x has %d members", n)
	}
}

func TestBracketDotEquivalence(t *testing.T) {
	root := Null()
	dotted, err := root.Create("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"a[b].c", "a[b][c]", "a.b[c]", "a[ b ].c"} {
		got, err := root.Get(p)
		if err != nil {
			t.Errorf("Get(%q): %v", p, err)
			continue
		}
		if got != dotted {
			t.Errorf("Get(%q) is a different node", p)
		}
	}
}

func TestArrayAutoExtension(t *testing.T) {
	x, err := Null().Create("arr[3].x")
	if err != nil {
		t.Fatal(err)
	}
	root := x.Root()
	arr, err := root.Get("arr")
	if err != nil {
		t.Fatal(err)
	}
	if arr.Type != ArrayType || arr.Len() != 4 {
		t.Fatalf("arr is %s of length %d", arr.Type, arr.Len())
	}
	for i := 0; i < 3; i++ {
		if arr.Values[i].Type != NullType {
			t.Errorf("arr[%d] is %s", i, arr.Values[i].Type)
		}
	}
	if arr.Values[3].Type != ObjectType || arr.Values[3].Member("x") != x {
		t.Error("arr[3] does not hold x")
	}

	// extending an existing array keeps its elements
	if _, err := root.Create("arr[5]"); err != nil {
		t.Fatal(err)
	}
	if arr.Len() != 6 || arr.Values[3].Member("x") != x {
		t.Errorf("extension changed the array: len %d", arr.Len())
	}
	// empty brackets mean index 0
	first, err := root.Get("arr[]")
	if err != nil || first != arr.Values[0] {
		t.Errorf("arr[] = %v, %v", first, err)
	}
}

func TestCreatePromotesNull(t *testing.T) {
	root := obj(kv("n", Null()), kv("m", Null()))
	if _, err := root.Create("n.k"); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Create("m[1]"); err != nil {
		t.Fatal(err)
	}
	if got := root.Values[0].Type; got != ObjectType {
		t.Errorf("n is %s", got)
	}
	if got := root.Values[1]; got.Type != ArrayType || got.Len() != 2 {
		t.Errorf("m is %s of length %d", got.Type, got.Len())
	}
}

func TestCreateErrors(t *testing.T) {
	root := scenario()
	tests := []struct {
		path string
		err  error
	}{
		{"a.x", ErrIncorrect},
		{"b.x", ErrIncorrect},
		{"a[1]", ErrIncorrect},
		{"c[0].d[1].a", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if _, err := root.Create(tt.path); !errors.Is(err, tt.err) {
				t.Errorf("Create(%q) = %v, want %v", tt.path, err, tt.err)
			}
		})
	}
}

func TestCreateExistingMember(t *testing.T) {
	// parsing rejects a duplicate member; creation returns the member which
	// is already there
	root := scenario()
	a, err := root.Create("a")
	if err != nil {
		t.Fatal(err)
	}
	if a != root.Values[0] || root.Len() != 2 {
		t.Error("create of an existing member added a node")
	}
}

func TestAssignRollback(t *testing.T) {
	root := obj(kv("keep", FromInt(1)), kv("n", Null()))
	fail := errors.New("setter failed")
	_, err := Assign(root, "n.x[2].y", func(*Node) error { return fail })
	if !errors.Is(err, fail) {
		t.Fatalf("got %v", err)
	}
	want := obj(kv("keep", FromInt(1)), kv("n", Null()))
	if !Equal(root, want) {
		t.Error("failed assign left changes")
	}
	if n := root.Values[1]; n.Type != NullType || n.Values != nil {
		t.Errorf("n left as %s with %d children", n.Type, len(n.Values))
	}

	arr := FromSlice([]*Node{FromInt(7)})
	_, err = Assign(arr, "[3]", func(y *Node) error { return y.SetFloat(0) })
	if err != nil {
		t.Fatal(err)
	}
	_, err = Assign(arr, "[6]", func(*Node) error { return fail })
	if !errors.Is(err, fail) || arr.Len() != 4 {
		t.Errorf("got %v and length %d", err, arr.Len())
	}

	got, err := Assign(root, "n.z", func(y *Node) error { return y.SetString("hi") })
	if err != nil || got.Text != "hi" || got.KPath() != "n.z" {
		t.Errorf("assign: %v %v", got, err)
	}
}

func TestAssignScenarioC(t *testing.T) {
	d, err := Assign(nil, "c.d", func(y *Node) error { return y.SetString("hi") })
	if err != nil {
		t.Fatal(err)
	}
	root := d.Root()
	c := root.Member("c")
	if c == nil || c.Type != ObjectType || c.Member("d") != d {
		t.Fatal("c.d not built")
	}
	if d.Type != StringType || d.Text != "hi" {
		t.Errorf("d = %s %q", d.Type, d.Text)
	}
}
