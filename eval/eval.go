package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Env holds variables visible to expressions in addition to the document.
type Env map[string]any

// Program is a compiled expression bound to the shape of one environment.
type Program struct {
	src string
	prg *vm.Program
}

// Compile compiles src for evaluation against doc and env.
func Compile(src string, doc *ir.Node, env Env) (*Program, error) {
	vars := variables(doc, env)
	opts := append(exprOpts(doc), expr.Env(vars))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// Run runs p against doc and env and returns the result as a new tree.
func (p *Program) Run(doc *ir.Node, env Env) (*ir.Node, error) {
	v, err := p.run(doc, env)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, p.src, err)
	}
	return res, nil
}

func (p *Program) run(doc *ir.Node, env Env) (any, error) {
	v, err := expr.Run(p.prg, variables(doc, env))
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave ", p.src)
		debug.LogAny(v)
	}
	return v, nil
}

// Eval compiles and runs src against doc and env.
func Eval(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	p, err := Compile(src, doc, env)
	if err != nil {
		return nil, err
	}
	return p.Run(doc, env)
}

// EvalBool evaluates src as a condition; the result must be a Bool.
func EvalBool(doc *ir.Node, src string, env Env) (bool, error) {
	p, err := Compile(src, doc, env)
	if err != nil {
		return false, err
	}
	v, err := p.run(doc, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not a bool", ErrEval, src, v)
	}
	return b, nil
}

func variables(doc *ir.Node, env Env) map[string]any {
	res := map[string]any{}
	if doc != nil {
		if doc.Type == ir.ObjectType {
			for _, c := range doc.Values {
				res[c.Name] = c.ToValue()
			}
		}
		res["doc"] = doc.ToValue()
	}
	for k, v := range env {
		res[k] = v
	}
	return res
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			y, err := lookup(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return y.ToValue(), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := lookup(doc, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("kpath", func(params ...any) (any, error) {
			if doc == nil {
				return "", nil
			}
			return doc.KPath(), nil
		},
			new(func() string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// lookup resolves path from the root of doc's tree.
func lookup(doc *ir.Node, path string) (*ir.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ir.ErrNotFound)
	}
	return doc.Root().Get(path)
}
