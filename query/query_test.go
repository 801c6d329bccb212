package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

const store = `{
  "store": {
    "book": [
      {"author": "Rees", "title": "Sayings", "price": 8.95},
      {"author": "Waugh", "title": "Sword", "price": 12.99},
      {"author": "Melville", "title": "Moby Dick", "price": 8, "isbn": "0-553"}
    ],
    "bicycle": {"color": "red", "price": 399}
  }
}`

func doc(t *testing.T) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(store)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func wire(ys []*ir.Node) []string {
	res := make([]string, len(ys))
	for i, y := range ys {
		res[i] = encode.MustString(y, encode.EncodeWire(true))
	}
	return res
}

func TestSelect(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`$.store.book[0].title`, []string{`"Sayings"`}},
		{`$.store.book[-1].author`, []string{`"Melville"`}},
		{`$.store.book[*].author`, []string{`"Rees"`, `"Waugh"`, `"Melville"`}},
		{`$.store.book[?@.price < 10].title`, []string{`"Sayings"`, `"Moby Dick"`}},
		{`$.store.book[?@.isbn].title`, []string{`"Moby Dick"`}},
		{`$.store.book[0:2].price`, []string{`8.95`, `12.99`}},
		{`$.store.bicycle`, []string{`{"color":"red","price":399}`}},
		{`$.nothing`, []string{}},
		{`$`, []string{encode.MustString(doc(t), encode.EncodeWire(true))}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Select(doc(t), tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, wire(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectIdentity(t *testing.T) {
	root := doc(t)
	got, err := MustCompile(`$..color`).First(root)
	if err != nil {
		t.Fatal(err)
	}
	want, err := root.Get("store.bicycle.color")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("selected node is not the tree's node")
	}
	if err := got.SetString("blue"); err != nil {
		t.Fatal(err)
	}
	if s, _ := root.GetString("store.bicycle.color"); s != "blue" {
		t.Errorf("got %q", s)
	}
}

func TestPaths(t *testing.T) {
	root := doc(t)
	got, err := MustCompile(`$.store.book[?@.price > 10]`).Paths(root)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"store.book[1]"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	book, _ := root.Get("store.book")
	got, err = MustCompile(`$[2].isbn`).Paths(book)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"[2].isbn"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	root := doc(t)
	n, err := MustCompile(`$.store.book[?@.price < 10]`).Delete(root)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("deleted %d", n)
	}
	titles, err := Select(root, `$..title`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{`"Sword"`}, wire(titles)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := MustCompile(`$`).Delete(root); !errors.Is(err, ir.ErrParam) {
		t.Errorf("deleting root: %v", err)
	}
}

func TestDeleteNested(t *testing.T) {
	root := doc(t)
	n, err := MustCompile(`$..price`).Delete(root)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("deleted %d", n)
	}
	n, err = MustCompile(`$..*`).Delete(root)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || root.Len() != 0 {
		t.Errorf("deleted %d, %d left", n, root.Len())
	}
}

func TestCompileError(t *testing.T) {
	for _, expr := range []string{"", "store", "$[", "$.a[?@.b ==]"} {
		if _, err := Compile(expr); !errors.Is(err, ErrQuery) {
			t.Errorf("Compile(%q) = %v", expr, err)
		}
	}
}
