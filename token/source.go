package token

import (
	"bufio"
	"bytes"
	"io"
)

// Source reads a UTF-8 document one rune at a time. Invalid encodings,
// overlong forms and surrogate code points decode to U+FFFD and
// consume a single byte, so a bad byte never aborts the document.
//
// A CR, an LF or a CRLF pair each end one row. A tab is a single column.
type Source struct {
	r      io.RuneReader
	pos    Pos
	peeked bool
	pr     rune
	psz    int
	perr   error
	cr     bool
}

func NewSource(d []byte) *Source {
	return &Source{r: bytes.NewReader(d), pos: Pos{Row: 1}}
}

// NewReaderSource returns a Source reading from r, buffering it unless it
// already reads runes.
func NewReaderSource(r io.Reader) *Source {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Source{r: rr, pos: Pos{Row: 1}}
}

// Pos returns the position after the last rune read.
func (s *Source) Pos() Pos {
	return s.pos
}

// Peek returns the next rune without consuming it. At the end of input it
// returns io.EOF.
func (s *Source) Peek() (rune, error) {
	if !s.peeked {
		s.pr, s.psz, s.perr = s.r.ReadRune()
		s.peeked = true
	}
	return s.pr, s.perr
}

// Next consumes and returns the next rune.
func (s *Source) Next() (rune, error) {
	r, err := s.Peek()
	if err != nil {
		return r, err
	}
	s.peeked = false
	s.pos.Off += s.psz
	switch r {
	case '\r':
		s.pos.Row++
		s.pos.Col = 0
		s.cr = true
		return r, nil
	case '\n':
		if !s.cr {
			s.pos.Row++
			s.pos.Col = 0
		}
	default:
		s.pos.Col++
	}
	s.cr = false
	return r, nil
}

// SkipSpace consumes JSON whitespace and returns the next rune, unread.
func (s *Source) SkipSpace() (rune, error) {
	for {
		r, err := s.Peek()
		if err != nil {
			return r, err
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			s.Next()
		default:
			return r, nil
		}
	}
}
