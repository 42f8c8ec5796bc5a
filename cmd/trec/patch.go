package main

import (
	"fmt"

	"github.com/signadot/trec/envelope"
	"github.com/signadot/trec/record"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 1:
		args = append(args, "-")
	case 2:
	default:
		return fmt.Errorf("%w: patch requires a patch file and at most one record file", cli.ErrUsage)
	}
	p, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	target, err := cfg.readOne(cc, args[1])
	if err != nil {
		return err
	}
	var res *record.Record
	if cfg.Merge {
		res, err = envelope.MergePatch(target, p)
	} else {
		res, err = envelope.ApplyPatch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return cfg.writeRecords(cc.Out, []*record.Record{res})
}
