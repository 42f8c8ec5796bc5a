package main

import (
	"fmt"
	"io"

	"github.com/signadot/trec/record"
	"github.com/signadot/trec/render"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	rs, err := cfg.readAll(cc, args)
	if err != nil {
		return err
	}
	return viewRecords(cfg, cc.Out, rs)
}

func viewRecords(cfg *ViewConfig, w io.Writer, rs []*record.Record) error {
	opts := []render.Option{
		render.WithColors(cfg.colors(w)),
		render.Sorted(cfg.Sorted),
	}
	for i, r := range rs {
		if i > 0 {
			if _, err := w.Write(docSep[1:]); err != nil {
				return err
			}
		}
		if err := render.Text(w, r, opts...); err != nil {
			return fmt.Errorf("error writing record %d: %w", i, err)
		}
	}
	return nil
}
