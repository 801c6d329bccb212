package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jdoc/ir"
)

// yamlNumber keeps a number's text through YAML marshalling.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := toYAML(node, 0)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node, level int) (any, error) {
	if level > ir.MaxDepth {
		return nil, ir.ErrDepth
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Values))
		for _, c := range node.Values {
			v, err := toYAML(c, level+1)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: c.Name, Value: v})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, c := range node.Values {
			v, err := toYAML(c, level+1)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.StringType:
		return node.Text, nil
	case ir.NumberType:
		return yamlNumber(node.Text), nil
	case ir.BoolType:
		return node.Text == "true", nil
	default:
		return nil, nil
	}
}
