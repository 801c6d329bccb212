package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, a member name", cli.ErrUsage)
	}
	name := args[0]
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ string, y *ir.Node) error {
		res, err := y.FindName(name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, strconv.Quote(res.KPath())+"\n"); err != nil {
			return err
		}
		if cfg.Paths {
			return nil
		}
		return writeDoc(cfg.MainConfig, cc.Out, res)
	})
}

func walk(cfg *WalkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Walk.Parse(cc, args)
	if err != nil {
		cfg.Walk.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(_ string, y *ir.Node) error {
		var werr error
		_, err := ir.Traverse(y, func(n *ir.Node, _ int, _ *ir.Node, depth int) bool {
			if cfg.MaxDepth >= 0 && depth > cfg.MaxDepth {
				return false
			}
			if cfg.Leaves && !n.Type.IsLeaf() {
				return false
			}
			werr = walkLine(cc.Out, n)
			return werr != nil
		})
		if err != nil {
			return err
		}
		return werr
	})
}

// walkLine writes the path, type and compact value of y, the value only
// for leaves and empty containers.
func walkLine(w io.Writer, y *ir.Node) error {
	val := fmt.Sprintf("(%d)", y.Len())
	if y.Type.IsLeaf() || y.Len() == 0 {
		val = encode.MustString(y, encode.EncodeWire(true))
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", strconv.Quote(y.KPath()), y.Type, val)
	return err
}
