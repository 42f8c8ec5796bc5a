package main

import (
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	rs, err := cfg.readAll(cc, args)
	if err != nil {
		return err
	}
	return cfg.writeRecords(cc.Out, rs)
}
