package main

import (
	"fmt"
	"io"

	"github.com/signadot/jdoc"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"
)

// readDoc reads the document named by arg, "-" being the command input.
func readDoc(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if arg == "-" {
		y, err := parse.ParseReader(cc.In, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return y, nil
	}
	y, err := jdoc.Load(arg, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %w", err)
	}
	return y, nil
}

// eachDoc calls f on each document named in files, or on the command input
// if there are none.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(name string, y *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		y, err := readDoc(cfg, cc, file)
		if err != nil {
			return err
		}
		if err := f(file, y); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func writeDoc(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	opts := cfg.encOpts(w)
	if err := encode.Encode(y, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.WireOut && !encode.FormatFromOpts(opts...).IsYAML() {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// output writes root back to file when inPlace is set and to the command
// output otherwise.
func output(cfg *MainConfig, cc *cli.Context, file string, inPlace bool, root *ir.Node) error {
	if !inPlace {
		return writeDoc(cfg, cc.Out, root)
	}
	if file == "-" {
		return fmt.Errorf("%w: -i needs a file argument", cli.ErrUsage)
	}
	if err := jdoc.Save(file, root, cfg.fileOpts()...); err != nil {
		return err
	}
	theLog.Info("saved", "file", file)
	return nil
}
