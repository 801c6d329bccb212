package parse

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return parse(token.NewSource(d), opts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses the single document read from r.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	return parse(token.NewReaderSource(r), opts)
}

// ParseFile parses the file at path, holding LockFile(path) while reading.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	unlock := LockFile(path)
	defer unlock()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := ParseReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

var fileLocks sync.Map

// LockFile takes the process wide lock for path and returns the function
// releasing it. It serializes access to the file's bytes, not to any tree
// read from it.
func LockFile(path string) func() {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	v, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func parse(src *token.Source, opts []ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{src: src, opts: pOpts}
	res, err := p.value(0)
	if err != nil {
		return nil, err
	}
	r, err := src.SkipSpace()
	switch {
	case err == io.EOF:
	case err != nil:
		return nil, p.wrap(err)
	default:
		src.Next()
		return nil, p.errorf(ErrSyntax, "unexpected %q after document", r)
	}
	if debug.Parse() {
		debug.LogNode("parsed", res)
	}
	return res, nil
}

type parser struct {
	src  *token.Source
	opts *parseOpts
}

func (p *parser) wrap(err error) error {
	if err == io.EOF {
		err = ErrUnexpectedEOF
	}
	return &Error{Err: err, Pos: p.src.Pos()}
}

func (p *parser) errorf(kind error, format string, args ...any) error {
	return &Error{Err: fmt.Errorf("%w: "+format, append([]any{kind}, args...)...), Pos: p.src.Pos()}
}

func (p *parser) next() (rune, error) {
	r, err := p.src.Next()
	if err != nil {
		return r, p.wrap(err)
	}
	return r, nil
}

// expect consumes the next non space rune, which must be want.
func (p *parser) expect(want rune) error {
	if _, err := p.src.SkipSpace(); err != nil {
		return p.wrap(err)
	}
	r, _ := p.src.Next()
	if r != want {
		return p.errorf(ErrSyntax, "expected %q, got %q", want, r)
	}
	return nil
}

func (p *parser) value(depth int) (*ir.Node, error) {
	r, err := p.src.SkipSpace()
	if err != nil {
		return nil, p.wrap(err)
	}
	if p.opts.positions == nil {
		return p.token(r, depth)
	}
	start := p.src.Pos()
	res, err := p.token(r, depth)
	if err == nil {
		start.Col++
		p.opts.positions[res] = start
	}
	return res, err
}

func (p *parser) token(r rune, depth int) (*ir.Node, error) {
	switch {
	case (r == '{' || r == '[') && depth >= p.opts.maxDepth:
		p.src.Next()
		return nil, p.errorf(ErrDepth, "more than %d nested containers", p.opts.maxDepth)
	case r == '{':
		return p.object(depth)
	case r == '[':
		return p.array(depth)
	case r == '"':
		p.src.Next()
		s, err := p.str()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case r == '-' || (r >= '0' && r <= '9'):
		return p.number()
	case r >= 'a' && r <= 'z':
		return p.literal()
	default:
		p.src.Next()
		return nil, p.errorf(ErrSyntax, "unexpected %q", r)
	}
}

func (p *parser) object(depth int) (*ir.Node, error) {
	p.src.Next()
	res := &ir.Node{Type: ir.ObjectType}
	r, err := p.src.SkipSpace()
	if err != nil {
		return nil, p.wrap(err)
	}
	if r == '}' {
		p.src.Next()
		return res, nil
	}
	for {
		if err := p.expect('"'); err != nil {
			return nil, err
		}
		name, err := p.str()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		child, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		child.Name = name
		if err := p.attach(res, child); err != nil {
			return nil, &Error{Err: err, Pos: p.src.Pos()}
		}
		r, err := p.src.SkipSpace()
		if err != nil {
			return nil, p.wrap(err)
		}
		p.src.Next()
		switch r {
		case ',':
		case '}':
			return res, nil
		default:
			return nil, p.errorf(ErrSyntax, "expected ',' or '}', got %q", r)
		}
	}
}

func (p *parser) attach(obj, child *ir.Node) error {
	if !p.opts.looseNames {
		return ir.Attach(obj, child)
	}
	if obj.Member(child.Name) != nil {
		return fmt.Errorf("%w: member %q", ir.ErrExists, child.Name)
	}
	child.Parent = obj
	obj.Values = append(obj.Values, child)
	return nil
}

func (p *parser) array(depth int) (*ir.Node, error) {
	p.src.Next()
	res := &ir.Node{Type: ir.ArrayType}
	r, err := p.src.SkipSpace()
	if err != nil {
		return nil, p.wrap(err)
	}
	if r == ']' {
		p.src.Next()
		return res, nil
	}
	for {
		child, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		child.Parent = res
		res.Values = append(res.Values, child)
		r, err := p.src.SkipSpace()
		if err != nil {
			return nil, p.wrap(err)
		}
		p.src.Next()
		switch r {
		case ',':
		case ']':
			return res, nil
		default:
			return nil, p.errorf(ErrSyntax, "expected ',' or ']', got %q", r)
		}
	}
}

// str reads the rest of a string whose opening quote has been consumed.
func (p *parser) str() (string, error) {
	b := &strings.Builder{}
	hi := rune(-1)
	flush := func() {
		if hi >= 0 {
			b.WriteRune(utf8.RuneError)
			hi = -1
		}
	}
	for {
		r, err := p.next()
		if err != nil {
			return "", err
		}
		switch {
		case r == '"':
			flush()
			return b.String(), nil
		case r < 0x20:
			return "", p.errorf(ErrSyntax, "%w %#x in string", token.ErrUnicodeControl, r)
		case r != '\\':
			flush()
			b.WriteRune(r)
			continue
		}
		e, err := p.next()
		if err != nil {
			return "", err
		}
		if e != 'u' {
			flush()
			c, ok := unescape(e)
			if !ok {
				return "", p.errorf(ErrSyntax, "%w \\%c", token.ErrBadEscape, e)
			}
			b.WriteByte(c)
			continue
		}
		u, err := p.hex4()
		if err != nil {
			return "", err
		}
		switch {
		case u >= 0xd800 && u < 0xdc00:
			flush()
			hi = u
		case u >= 0xdc00 && u < 0xe000:
			if hi >= 0 {
				b.WriteRune(utf16.DecodeRune(hi, u))
				hi = -1
			} else {
				b.WriteRune(utf8.RuneError)
			}
		case u == 0:
			// some producers emit \u0000 for '0'
			flush()
			b.WriteByte('0')
		default:
			flush()
			b.WriteRune(u)
		}
	}
}

func unescape(e rune) (byte, bool) {
	switch e {
	case '"', '\\', '/':
		return byte(e), true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

func (p *parser) hex4() (rune, error) {
	var u rune
	for range 4 {
		r, err := p.next()
		if err != nil {
			return 0, err
		}
		var v rune
		switch {
		case r >= '0' && r <= '9':
			v = r - '0'
		case r >= 'a' && r <= 'f':
			v = r - 'a' + 10
		case r >= 'A' && r <= 'F':
			v = r - 'A' + 10
		default:
			return 0, p.errorf(ErrSyntax, "%w: %q in \\u escape", token.ErrBadUnicode, r)
		}
		u = u<<4 | v
	}
	return u, nil
}

func (p *parser) number() (*ir.Node, error) {
	var buf bytes.Buffer
	for {
		r, err := p.src.Peek()
		if err != nil && err != io.EOF {
			return nil, p.wrap(err)
		}
		if err == io.EOF || !strings.ContainsRune("-+.eE0123456789", r) {
			break
		}
		p.src.Next()
		buf.WriteRune(r)
	}
	text := buf.String()
	n, err := token.ScanNumber(text)
	if err == nil && n != len(text) {
		err = fmt.Errorf("%w: %q", token.ErrNumber, text)
	}
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("%w: %w", ErrSyntax, err), Pos: p.src.Pos()}
	}
	return &ir.Node{Type: ir.NumberType, Text: text}, nil
}

func (p *parser) literal() (*ir.Node, error) {
	var buf bytes.Buffer
	for {
		r, err := p.src.Peek()
		if err != nil && err != io.EOF {
			return nil, p.wrap(err)
		}
		if err != nil || r < 'a' || r > 'z' {
			break
		}
		p.src.Next()
		buf.WriteRune(r)
	}
	switch lit := buf.String(); lit {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "null":
		return ir.Null(), nil
	default:
		return nil, p.errorf(ErrSyntax, "bad literal %q", lit)
	}
}
