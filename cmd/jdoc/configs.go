package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/eval"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	ASCII   bool `cli:"name=a aliases=ascii desc='escape non-ASCII characters'"`
	Indent  int  `cli:"name=indent desc='spaces per level of indentation (default 2)'"`
	Loose   bool `cli:"name=loose desc='accept member names containing path characters'"`

	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Loose {
		res = append(res, parse.LooseNames())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// fileOpts are the encode options for writing a document back to a file:
// the chosen layout without colors.
func (cfg *MainConfig) fileOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeEscaped(cfg.ASCII),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.fileOpts()
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=r aliases=raw desc='print strings without quotes'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String  bool `cli:"name=s desc='take the value as a string, not json'"`
	InPlace bool `cli:"name=i desc='write the result back to the file'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	InPlace bool `cli:"name=i desc='write the result back to the file'"`

	Del *cli.Command
}

type FindConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='print only the paths of the results'"`

	Find *cli.Command
}

type WalkConfig struct {
	*MainConfig
	MaxDepth int  `cli:"name=d desc='do not descend below this depth'"`
	Leaves   bool `cli:"name=l desc='print only leaves'"`

	Walk *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Paths  bool `cli:"name=p desc='print the paths of the results'"`
	Delete bool `cli:"name=del desc='delete the results and print the document'"`

	Query *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    eval.Env
	Expand bool `cli:"name=x desc='expand .[expr] and $[expr] in the strings of the documents'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge   bool `cli:"name=m desc='the patch is a merge patch'"`
	InPlace bool `cli:"name=i desc='write the result back to the file'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=t desc='diff the encoded documents line by line'"`
	Merge   bool `cli:"name=m desc='output a merge patch'"`

	Diff *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim bool `cli:"name=trim desc='trim the results to the match'"`

	Match *cli.Command
}
