package token

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readAll(s *Source) ([]rune, []Pos) {
	var rs []rune
	var ps []Pos
	for {
		r, err := s.Next()
		if err == io.EOF {
			return rs, ps
		}
		rs = append(rs, r)
		ps = append(ps, s.Pos())
	}
}

func TestSourcePositions(t *testing.T) {
	in := "a\tb\nc\r\nd\re"
	_, ps := readAll(NewSource([]byte(in)))
	want := []Pos{
		{1, 1, 1}, // a
		{1, 2, 2}, // tab
		{1, 3, 3}, // b
		{2, 0, 4}, // \n
		{2, 1, 5}, // c
		{3, 0, 6}, // \r
		{3, 0, 7}, // \n of CRLF
		{3, 1, 8}, // d
		{4, 0, 9}, // \r
		{4, 1, 10},
	}
	if diff := cmp.Diff(want, ps); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceInvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []rune
	}{
		{"valid", []byte("h€"), []rune{'h', '€'}},
		{"lone continuation", []byte{'a', 0x80, 'b'}, []rune{'a', 0xfffd, 'b'}},
		{"overlong slash", []byte{0xc0, 0xaf}, []rune{0xfffd, 0xfffd}},
		{"surrogate", []byte{0xed, 0xa0, 0x80}, []rune{0xfffd, 0xfffd, 0xfffd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := readAll(NewSource(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("runes mismatch (-want +got):\n%s", diff)
			}
			got, _ = readAll(NewReaderSource(strings.NewReader(string(tt.in))))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("reader runes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourcePeek(t *testing.T) {
	s := NewSource([]byte("  \n x"))
	r, err := s.SkipSpace()
	if err != nil || r != 'x' {
		t.Fatalf("SkipSpace = %q, %v", r, err)
	}
	if p := s.Pos(); p.Row != 2 || p.Col != 1 {
		t.Errorf("pos after skip = %v", p)
	}
	s.Next()
	if _, err := s.Peek(); err != io.EOF {
		t.Errorf("Peek at end = %v", err)
	}
}
