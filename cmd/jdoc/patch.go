package main

import (
	"fmt"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	files := args[1:]
	if cfg.InPlace && len(files) == 0 {
		return fmt.Errorf("%w: -i needs a file argument", cli.ErrUsage)
	}
	return eachDoc(cfg.MainConfig, cc, files, func(file string, y *ir.Node) error {
		var res *ir.Node
		if cfg.Merge {
			res, err = jdoc.MergePatch(y, p)
		} else {
			res, err = jdoc.Patch(y, p)
		}
		if err != nil {
			return err
		}
		return output(cfg.MainConfig, cc, file, cfg.InPlace, res)
	})
}
