package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/jdoc/ir"
	jquery "github.com/signadot/jdoc/query"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a JSONPath expression", cli.ErrUsage)
	}
	src := args[0]
	if src != "" && src[0] != '$' {
		src = "$" + src
	}
	q, err := jquery.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ string, y *ir.Node) error {
		switch {
		case cfg.Delete:
			n, err := q.Delete(y)
			if err != nil {
				return err
			}
			theLog.Info("deleted", "query", q.String(), "count", n)
			return writeDoc(cfg.MainConfig, cc.Out, y)
		case cfg.Paths:
			paths, err := q.Paths(y)
			if err != nil {
				return err
			}
			for _, p := range paths {
				if _, err := io.WriteString(cc.Out, strconv.Quote(p)+"\n"); err != nil {
					return err
				}
			}
			return nil
		default:
			res, err := q.Select(y)
			if err != nil {
				return err
			}
			clones := make([]*ir.Node, len(res))
			for i, r := range res {
				clones[i] = r.Clone()
			}
			return writeDoc(cfg.MainConfig, cc.Out, ir.FromSlice(clones))
		}
	})
}
