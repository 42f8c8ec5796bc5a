package main

import (
	"fmt"

	"github.com/signadot/trec/query"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -e <expr>", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	rs, err := cfg.readAll(cc, args)
	if err != nil {
		return err
	}
	sel := query.Filter
	if cfg.Invert {
		sel = query.Reject
	}
	res, err := sel(q, rs)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.Info("filtered", "expr", q, "in", len(rs), "out", len(res))
	}
	return cfg.writeRecords(cc.Out, res)
}
