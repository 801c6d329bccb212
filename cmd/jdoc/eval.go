package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jdoc/eval"
	"github.com/signadot/jdoc/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func jdocEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		return eachDoc(cfg.MainConfig, cc, args, func(_ string, y *ir.Node) error {
			res, err := eval.Expand(y, cfg.Env)
			if err != nil {
				return err
			}
			return writeDoc(cfg.MainConfig, cc.Out, res)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ string, y *ir.Node) error {
		res, err := eval.Eval(y, src, cfg.Env)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, res)
	})
}

// envFunc sets the variable named by the dotted key of a, which has the
// form key=val. val is read as yaml, so -e n=1 gives a number and -e s=x a
// string.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
