package main

import (
	"slices"

	"github.com/signadot/trec/query"

	"github.com/scott-cotton/cli"
)

func sortRecords(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	rs, err := cfg.readAll(cc, args)
	if err != nil {
		return err
	}
	n := len(rs)
	if cfg.Unique {
		rs = query.Dedup(rs)
	}
	query.Sort(rs)
	if cfg.Reverse {
		slices.Reverse(rs)
	}
	if cfg.Verbose {
		theLog.Info("sorted", "records", len(rs), "duplicates", n-len(rs))
	}
	return cfg.writeRecords(cc.Out, rs)
}
