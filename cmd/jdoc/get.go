package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ string, y *ir.Node) error {
		res, err := y.Get(path)
		if err != nil {
			return fmt.Errorf("error getting %q: %w", path, err)
		}
		if cfg.Raw && res.Type == ir.StringType {
			_, err := io.WriteString(cc.Out, res.Text+"\n")
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, res)
	})
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	path, val := args[0], args[1]
	file := "-"
	if len(args) == 3 {
		file = args[2]
	}
	v := ir.FromString(val)
	if !cfg.String {
		v, err = parse.ParseString(val, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding value %q (use -s for a string): %w", val, err)
		}
	}
	root, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if _, err := jdoc.AssignNode(root, path, v); err != nil {
		return fmt.Errorf("error setting %q: %w", path, err)
	}
	return output(cfg.MainConfig, cc, file, cfg.InPlace, root)
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: del requires a path and at most one file", cli.ErrUsage)
	}
	path := args[0]
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	root, err := readDoc(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	y, err := root.Get(path)
	if err != nil {
		return fmt.Errorf("error getting %q: %w", path, err)
	}
	if err := ir.Delete(root, y); err != nil {
		return fmt.Errorf("error deleting %q: %w", path, err)
	}
	return output(cfg.MainConfig, cc, file, cfg.InPlace, root)
}
