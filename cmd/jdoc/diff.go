package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	if cfg.Text && cfg.Merge {
		return fmt.Errorf("%w: -t and -m are exclusive", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	var res *ir.Node
	switch {
	case cfg.Text:
		d, err := jdoc.DiffText(from, to, cfg.fileOpts()...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, d)
		if err != nil {
			return err
		}
		if d != "" {
			return cli.ExitCodeErr(1)
		}
		return nil
	case cfg.Merge:
		res, err = jdoc.CreateMergePatch(from, to)
	default:
		res, err = jdoc.DiffPatch(from, to)
	}
	if err != nil {
		return err
	}
	if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
		return err
	}
	if ir.Equal(from, to) {
		return nil
	}
	return cli.ExitCodeErr(1)
}
