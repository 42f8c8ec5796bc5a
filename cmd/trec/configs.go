package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/trec/envelope"
	"github.com/signadot/trec/format"
	"github.com/signadot/trec/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='render with color'"`
	Z       bool   `cli:"name=z aliases=zstd desc='compress output with zstd'"`
	Indent  bool   `cli:"name=indent desc='indent json output'"`
	Verbose bool   `cli:"name=v desc='log progress and debug output to stderr'"`
	Config  string `cli:"name=config desc='jsonc file with default options (default $TREC_CONFIG)'"`

	InFormat, OutFormat *format.Format

	// from the config file, applied where no option is given
	file *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts() []envelope.EncodeOption {
	return []envelope.EncodeOption{
		envelope.EncodeFormat(cfg.outFormat()),
		envelope.EncodeIndent(cfg.Indent),
		envelope.EncodeCompress(cfg.Z),
	}
}

func (cfg *MainConfig) decOpts() []envelope.DecodeOption {
	if cfg.InFormat == nil {
		return nil
	}
	return []envelope.DecodeOption{envelope.DecodeFormat(*cfg.InFormat)}
}

func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) colors(w io.Writer) *render.Colors {
	if cfg.Color {
		return render.NewColors()
	}
	if cfg.optSet("color") {
		return nil
	}
	if cfg.file != nil && cfg.file.Color != nil {
		if *cfg.file.Color {
			return render.NewColors()
		}
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return render.NewColors()
	}
	return nil
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Sorted bool `cli:"name=s aliases=sorted desc='sort keys'"`
	View   *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type DigestConfig struct {
	*MainConfig

	Digest *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Expr   string `cli:"name=e aliases=expr desc='expr-lang predicate over record keys'"`
	Invert bool   `cli:"name=invert desc='output the records not matching'"`

	Filter *cli.Command
}

type SortConfig struct {
	*MainConfig
	Unique  bool `cli:"name=u desc='drop equal records'"`
	Reverse bool `cli:"name=r desc='reverse the order'"`

	Sort *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}
