package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/brunoga/jpatch"
	"github.com/brunoga/jpatch/codec"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log every operation to stderr'"`
	Y       bool `cli:"name=y aliases=yaml desc='read patches and documents as yaml'"`
	Escape  bool `cli:"name=escape desc='decode ~0 and ~1 in path tokens'"`
	Color   bool `cli:"name=color desc='color diffs even when not writing to a terminal'"`

	Main *cli.Command
}

// options returns the patch options selected on the command line.
func (cfg *MainConfig) options() []jpatch.Option {
	opts := []jpatch.Option{jpatch.WithLogger(theLog)}
	if cfg.Escape {
		opts = append(opts, jpatch.WithPointerEscaping())
	}
	return opts
}

func (cfg *MainConfig) decode(data []byte) (any, error) {
	if cfg.Y {
		return codec.DecodeYAML(data)
	}
	return codec.DecodeBytes(data)
}

func (cfg *MainConfig) decodePatch(data []byte) (jpatch.Patch, error) {
	v, err := cfg.decode(data)
	if err != nil {
		return nil, err
	}
	return codec.ToPatch(v)
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig
	Result bool   `cli:"name=r aliases=result desc='print only the result of the last operation'"`
	Diff   bool   `cli:"name=d aliases=diff desc='print a line diff of the document instead of the document'"`
	Exit   bool   `cli:"name=x desc='exit with status 1 when the result is false'"`
	Indent string `cli:"name=i aliases=indent desc='indent output with the given string'"`

	Apply *cli.Command
}

func (cfg *ApplyConfig) encOpts() []codec.EncodeOption {
	if cfg.Indent == "" {
		return nil
	}
	return []codec.EncodeOption{codec.Indent("", cfg.Indent)}
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
