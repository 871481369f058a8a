package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/brunoga/jpatch/codec"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: apply requires a patch and at most one document", cli.ErrUsage)
	}
	if cfg.Result && cfg.Diff {
		return fmt.Errorf("%w: -r and -d cannot be combined", cli.ErrUsage)
	}
	patchArg, docArg := args[0], "-"
	if len(args) == 2 {
		docArg = args[1]
	}
	if patchArg == "-" && docArg == "-" {
		return fmt.Errorf("%w: the patch and the document cannot both come from stdin", cli.ErrUsage)
	}

	data, err := readArg(cc.In, patchArg)
	if err != nil {
		return err
	}
	p, err := cfg.decodePatch(data)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", patchArg, err)
	}
	if data, err = readArg(cc.In, docArg); err != nil {
		return err
	}
	root, err := cfg.decode(data)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", docArg, err)
	}

	var before []byte
	if cfg.Diff {
		if before, err = diffText(root, cfg.Indent); err != nil {
			return err
		}
	}

	result, err := p.Apply(&root, cfg.options()...)
	if err != nil {
		return fmt.Errorf("error applying %s to %s: %w", patchArg, docArg, err)
	}
	theLog.Debug("patch applied", "patch", patchArg, "doc", docArg, "operations", len(p), "result", result)

	switch {
	case cfg.Result:
		if _, err := fmt.Fprintln(cc.Out, result); err != nil {
			return err
		}
	case cfg.Diff:
		after, err := diffText(root, cfg.Indent)
		if err != nil {
			return err
		}
		var colors *diffColors
		if cfg.colorize(cc.Out) {
			colors = newDiffColors()
		}
		if err := writeDiff(cc.Out, string(before), string(after), colors); err != nil {
			return err
		}
	default:
		if err := codec.Encode(cc.Out, root, cfg.encOpts()...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}

	if cfg.Exit && !result {
		return cli.ExitCodeErr(1)
	}
	return nil
}
