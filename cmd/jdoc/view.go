package main

import (
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(_ string, y *ir.Node) error {
		return writeDoc(cfg.MainConfig, cc.Out, y)
	})
}
