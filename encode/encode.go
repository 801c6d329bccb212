package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

type EncState struct {
	depth, indent int
	wire          bool
	escaped       bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ir.ErrParam)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es, 0); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState, level int) error {
	if level > ir.MaxDepth {
		return ir.ErrDepth
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeContainer(node, w, es, level, "{", "}")
	case ir.ArrayType:
		return encodeContainer(node, w, es, level, "[", "]")
	case ir.StringType:
		v := token.Quote(node.Text, es.escaped)
		return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
	case ir.NumberType, ir.BoolType:
		return writeString(w, applyColor(es, node.Type, ValueColor, node.Text))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("%w: unknown node type %d", ir.ErrParam, node.Type)
	}
}

func encodeContainer(node *ir.Node, w io.Writer, es *EncState, level int, open, end string) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, node.Type, SepColor, open+end))
	}
	if err := writeString(w, applyColor(es, node.Type, SepColor, open)); err != nil {
		return err
	}
	es.depth++
	for i, child := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			if err := writeField(w, child.Name, es); err != nil {
				return err
			}
		}
		if err := encode(child, w, es, level+1); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, node.Type, SepColor, end))
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	f = applyColor(es, ir.ObjectType, FieldColor, token.Quote(f, es.escaped))
	return writeString(w, f+applyColor(es, ir.ObjectType, SepColor, sep))
}
