package ir

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/signadot/jdoc/token"
)

// ToAny converts y to plain Go values: map[string]any, []any, string, bool,
// nil, and gojson.Number for numbers so their text is kept exactly. Object
// member order is lost.
func (y *Node) ToAny() any {
	return y.toAny(func(text string) any { return gojson.Number(text) })
}

// ToValue is like ToAny but gives numbers as int64 when they are integers
// which fit, and as float64 otherwise, for consumers which compute with
// them.
func (y *Node) ToValue() any {
	return y.toAny(numberValue)
}

func numberValue(text string) any {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	f, _ := strconv.ParseFloat(text, 64)
	return f
}

func (y *Node) toAny(num func(string) any) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Values))
		for _, c := range y.Values {
			res[c.Name] = c.toAny(num)
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, c := range y.Values {
			res[i] = c.toAny(num)
		}
		return res
	case StringType:
		return y.Text
	case NumberType:
		return num(y.Text)
	case BoolType:
		return y.Text == "true"
	default:
		return nil
	}
}

// FromAny builds a tree from a Go value. Maps with string keys become
// Objects in sorted key order. Values of other types are marshalled with
// go-json and read back, so struct tags apply.
func FromAny(v any) (*Node, error) {
	return fromAny(v, 0)
}

func fromAny(v any, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case gojson.Number:
		if !token.IsNumber(string(x)) {
			return nil, fmt.Errorf("%w: %q is not a number", ErrParam, x)
		}
		return &Node{Type: NumberType, Text: string(x)}, nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case int32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromUint(x), nil
	case uint32:
		return FromUint(uint64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %v has no JSON form", ErrParam, x)
		}
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ArrayType}
		for _, e := range x {
			c, err := fromAny(e, depth+1)
			if err != nil {
				return nil, err
			}
			c.Parent = res
			res.Values = append(res.Values, c)
		}
		return res, nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := fromAny(x[k], depth+1)
			if err != nil {
				return nil, err
			}
			c.Name = k
			c.Parent = res
			res.Values = append(res.Values, c)
		}
		return res, nil
	default:
		d, err := gojson.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParam, err)
		}
		res := &Node{}
		if err := res.UnmarshalJSON(d); err != nil {
			return nil, err
		}
		return res, nil
	}
}

// MarshalJSON writes y in compact form with raw UTF-8 strings.
func (y *Node) MarshalJSON() ([]byte, error) {
	return y.appendJSON(nil, 0)
}

func (y *Node) appendJSON(d []byte, depth int) ([]byte, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	var err error
	switch y.Type {
	case ObjectType, ArrayType:
		open, end := byte('['), byte(']')
		if y.Type == ObjectType {
			open, end = '{', '}'
		}
		d = append(d, open)
		for i, c := range y.Values {
			if i > 0 {
				d = append(d, ',')
			}
			if y.Type == ObjectType {
				d = token.AppendQuote(d, c.Name, false)
				d = append(d, ':')
			}
			d, err = c.appendJSON(d, depth+1)
			if err != nil {
				return nil, err
			}
		}
		return append(d, end), nil
	case StringType:
		return token.AppendQuote(d, y.Text, false), nil
	case NumberType, BoolType:
		return append(d, y.Text...), nil
	default:
		return append(d, "null"...), nil
	}
}

// UnmarshalJSON replaces y's value with the document in d, keeping Object
// member order and number text. y keeps its Name and Parent. Duplicate
// member names fail with ErrExists.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := gojson.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeValue(dec, 0)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrBadEncoding)
	}
	if err := y.SetNull(); err != nil {
		return err
	}
	y.Type = res.Type
	y.Text = res.Text
	y.Values = res.Values
	for _, c := range y.Values {
		c.Parent = y
	}
	return nil
}

func decodeValue(dec *gojson.Decoder, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}
	switch v := tok.(type) {
	case gojson.Delim:
		switch v {
		case '{':
			res := &Node{Type: ObjectType}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
				}
				name, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: member name %v", ErrBadEncoding, kt)
				}
				c, err := decodeValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				c.Name = name
				if err := Attach(res, c); err != nil {
					return nil, err
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
			}
			return res, nil
		case '[':
			res := &Node{Type: ArrayType}
			for dec.More() {
				c, err := decodeValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				c.Parent = res
				res.Values = append(res.Values, c)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
			}
			return res, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %v", ErrBadEncoding, v)
		}
	case string:
		return FromString(v), nil
	case gojson.Number:
		return &Node{Type: NumberType, Text: string(v)}, nil
	case bool:
		return FromBool(v), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrBadEncoding, tok)
	}
}
