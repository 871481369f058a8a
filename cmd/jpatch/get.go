package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/brunoga/jpatch"
	"github.com/brunoga/jpatch/codec"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a path and at most one document", cli.ErrUsage)
	}
	path, docArg := args[0], "-"
	if len(args) == 2 {
		docArg = args[1]
	}

	data, err := readArg(cc.In, docArg)
	if err != nil {
		return err
	}
	root, err := cfg.decode(data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", docArg, err)
	}
	matches, err := jpatch.Find(root, path, cfg.options()...)
	if err != nil {
		return fmt.Errorf("error executing get on %s with %s: %w", docArg, path, err)
	}
	for _, m := range matches {
		theLog.Debug("match", "path", m.Path)
		if err := codec.Encode(cc.Out, m.Value); err != nil {
			return fmt.Errorf("error encoding %s: %w", m.Path, err)
		}
	}
	return nil
}
