package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxNameLen is the longest member name, in bytes, a path may carry.
	MaxNameLen = 255
	// MaxIndex bounds bracketed indices. Creating a path materialises
	// every element up to the index, so the bound keeps a short path from
	// allocating an arbitrarily large array.
	MaxIndex = 1 << 24
)

var (
	ErrUnbalanced   = errors.New("unbalanced brackets")
	ErrEmptySegment = errors.New("empty path segment")
	ErrNameTooLong  = errors.New("name too long")
	ErrBadIndex     = errors.New("bad index")
	ErrTrailing     = errors.New("unexpected character in path")
)

// Segment is one step of a path. Index is -1 when the segment carries no
// index. A segment with an empty Name and an index addresses an element of
// the current node.
type Segment struct {
	Name  string
	Index int
}

func (s Segment) String() string {
	if s.Index < 0 {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is an ordered list of segments. The empty path addresses the root.
type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && seg.Name != "" {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Last returns the final segment of p. It panics if p is empty.
func (p Path) Last() Segment {
	return p[len(p)-1]
}

// Parent returns p without its final segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Parse parses the path at the front of s. It returns the segments and the
// number of bytes consumed. Parsing stops without error at control
// whitespace or any of , ; : { } ' " and backslash outside of brackets.
// After a closing bracket only '.', '[' or one of those may follow.
func Parse(s string) (Path, int, error) {
	n := len(s)
	if n == 0 || stop(s[0]) {
		return nil, 0, nil
	}
	var res Path
	i := 0
	for {
		start := i
		for i < n && !stop(s[i]) && s[i] != '.' && s[i] != '[' && s[i] != ']' {
			i++
		}
		name := s[start:i]
		if len(name) > MaxNameLen {
			return nil, start, fmt.Errorf("%w: %d bytes at offset %d", ErrNameTooLong, len(name), start)
		}
		seg := Segment{Name: name, Index: -1}
		bracketed := false
		for i < n && s[i] == '[' {
			bracketed = true
			j := strings.IndexByte(s[i+1:], ']')
			if j == -1 {
				return nil, i, fmt.Errorf("%w: missing ']' for '[' at offset %d", ErrUnbalanced, i)
			}
			inner := strings.Trim(s[i+1:i+1+j], " ")
			at := i
			i += j + 2
			if strings.ContainsAny(inner, "[.") || hasStop(inner) {
				return nil, at, fmt.Errorf("%w: bad bracket contents %q at offset %d", ErrUnbalanced, inner, at)
			}
			switch {
			case inner == "" || allDigits(inner):
				idx := 0
				if inner != "" {
					v, err := strconv.Atoi(inner)
					if err != nil || v > MaxIndex {
						return nil, at, fmt.Errorf("%w: %q at offset %d", ErrBadIndex, inner, at)
					}
					idx = v
				}
				if seg.Index == -1 {
					seg.Index = idx
					continue
				}
				res = append(res, seg)
				seg = Segment{Index: idx}
			default:
				if len(inner) > MaxNameLen {
					return nil, at, fmt.Errorf("%w: %d bytes at offset %d", ErrNameTooLong, len(inner), at)
				}
				if seg.Name != "" || seg.Index != -1 {
					res = append(res, seg)
				}
				seg = Segment{Name: inner, Index: -1}
			}
		}
		if seg.Name == "" && !bracketed {
			return nil, i, fmt.Errorf("%w at offset %d", ErrEmptySegment, i)
		}
		res = append(res, seg)
		if i < n && s[i] == ']' {
			return nil, i, fmt.Errorf("%w: unexpected ']' at offset %d", ErrUnbalanced, i)
		}
		if bracketed && i < n && s[i] != '.' && !stop(s[i]) {
			return nil, i, fmt.Errorf("%w: %q after ']' at offset %d", ErrTrailing, s[i:i+1], i)
		}
		if i < n && s[i] == '.' {
			i++
			continue
		}
		return res, i, nil
	}
}

// ParseAll parses s as a path which must span all of s.
func ParseAll(s string) (Path, error) {
	p, n, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if n != len(s) {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrTrailing, s[n:n+1], n)
	}
	return p, nil
}

// MustParse is like ParseAll but panics on error.
func MustParse(s string) Path {
	p, err := ParseAll(s)
	if err != nil {
		panic(fmt.Sprintf("kpath: %q: %v", s, err))
	}
	return p
}

func stop(c byte) bool {
	switch c {
	case ',', ';', ':', '{', '}', '\'', '"', '\\':
		return true
	}
	return c < 0x20 || c == 0x7f
}

func hasStop(s string) bool {
	for i := 0; i < len(s); i++ {
		if stop(s[i]) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
