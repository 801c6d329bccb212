package main

import (
	"fmt"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern file", cli.ErrUsage)
	}
	pattern, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	found := false
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(file string, y *ir.Node) error {
		ok, err := jdoc.Match(y, pattern)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		found = true
		if cfg.Trim {
			y = jdoc.Trim(pattern, y)
		}
		return writeDoc(cfg.MainConfig, cc.Out, y)
	})
	if err != nil {
		return err
	}
	if !found {
		return cli.ExitCodeErr(1)
	}
	return nil
}
