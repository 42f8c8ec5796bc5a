package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

// digest prints one line per record: the digest and the file it came from,
// followed by the record's index when the file holds several.
func digest(cfg *DigestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Digest.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		rs, err := cfg.readRecords(cc, file)
		if err != nil {
			return err
		}
		for i, r := range rs {
			name := file
			if len(rs) > 1 {
				name = fmt.Sprintf("%s#%d", file, i)
			}
			if _, err := fmt.Fprintf(cc.Out, "%s  %s\n", r.Digest(), name); err != nil {
				return err
			}
		}
	}
	return nil
}
