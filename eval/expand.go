package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"

	"github.com/expr-lang/expr"
)

// Expand returns a copy of doc with its strings expanded. Expressions see
// the variables of doc itself, before any expansion, and env.
func Expand(doc *ir.Node, env Env) (*ir.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ir.ErrParam)
	}
	vars := variables(doc, env)
	res := doc.Clone()
	var strs []*ir.Node
	_, err := ir.Traverse(res, func(y *ir.Node, _ int, _ *ir.Node, _ int) bool {
		if y.Type == ir.StringType {
			strs = append(strs, y)
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	for _, y := range strs {
		if err := expandNode(y, vars); err != nil {
			return nil, fmt.Errorf("at %q: %w", y.KPath(), err)
		}
	}
	return res, nil
}

func expandNode(y *ir.Node, vars map[string]any) error {
	run := func(src string) (any, error) {
		return evalAt(y, src, vars)
	}
	if src, ok := rawRef(y.Text); ok {
		v, err := run(src)
		if err != nil {
			return err
		}
		repl, err := ir.FromAny(v)
		if err != nil {
			return fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
		}
		return ir.Replace(y, repl)
	}
	s, err := ExpandString(y.Text, run)
	if err != nil {
		return err
	}
	y.Text = s
	return nil
}

func evalAt(y *ir.Node, src string, vars map[string]any) (any, error) {
	prg, err := expr.Compile(src, append(exprOpts(y), expr.Env(vars))...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	v, err := expr.Run(prg, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q at %q gave ", src, y.KPath())
		debug.LogAny(v)
	}
	return v, nil
}

// rawRef returns expr when s is exactly .[expr].
func rawRef(s string) (string, bool) {
	if !strings.HasPrefix(s, ".[") {
		return "", false
	}
	src, end, ok := scanExpr(s, 2)
	if !ok || end != len(s) {
		return "", false
	}
	return strings.TrimSpace(src), true
}

// ExpandString replaces each $[expr] in s by the text of run(expr).
// Brackets nest inside an expression, and a backslash makes the next
// character literal, so $[a\]b] evaluates "a]b". An unclosed $[ is kept
// as text.
func ExpandString(s string, run func(string) (any, error)) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], "$[")
		if j < 0 {
			out.WriteString(s[i:])
			break
		}
		start := i + j
		out.WriteString(s[i:start])
		src, end, ok := scanExpr(s, start+2)
		if !ok {
			out.WriteString(s[start:])
			break
		}
		v, err := run(strings.TrimSpace(src))
		if err != nil {
			return "", err
		}
		t, err := toText(v)
		if err != nil {
			return "", err
		}
		out.WriteString(t)
		i = end
	}
	return out.String(), nil
}

// scanExpr reads an expression starting at s[i] up to its closing
// bracket and returns it unescaped together with the offset just past the
// bracket.
func scanExpr(s string, i int) (string, int, bool) {
	var buf []byte
	depth := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 == len(s) {
				return "", 0, false
			}
			buf = append(buf, s[i+1])
			i += 2
			continue
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return string(buf), i + 1, true
			}
			depth--
		}
		buf = append(buf, c)
		i++
	}
	return "", 0, false
}

func toText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		y, err := ir.FromAny(v)
		if err != nil {
			return "", err
		}
		d, err := y.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
}
