package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/trec/envelope"
	"github.com/signadot/trec/format"
	"github.com/signadot/trec/record"

	"github.com/scott-cotton/cli"
)

var docSep = []byte("\n---\n")

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

// splitDocs splits text input into documents separated by "---" lines.
// Compressed and CBOR input hold a single document.
func splitDocs(data []byte) [][]byte {
	if envelope.IsCompressed(data) || envelope.Detect(data) == format.CBORFormat {
		return [][]byte{data}
	}
	data = bytes.TrimPrefix(data, []byte("---\n"))
	var res [][]byte
	for _, doc := range bytes.Split(data, docSep) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		res = append(res, doc)
	}
	return res
}

func (cfg *MainConfig) readRecords(cc *cli.Context, file string) ([]*record.Record, error) {
	data, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	var res []*record.Record
	for i, doc := range splitDocs(data) {
		r, err := envelope.Unmarshal(doc, cfg.decOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s document %d: %w", file, i, err)
		}
		res = append(res, r)
	}
	return res, nil
}

// readAll reads the records of all files, stdin when there are none.
func (cfg *MainConfig) readAll(cc *cli.Context, files []string) ([]*record.Record, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []*record.Record
	for _, file := range files {
		rs, err := cfg.readRecords(cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, rs...)
	}
	return res, nil
}

func (cfg *MainConfig) readOne(cc *cli.Context, file string) (*record.Record, error) {
	rs, err := cfg.readRecords(cc, file)
	if err != nil {
		return nil, err
	}
	if len(rs) != 1 {
		return nil, fmt.Errorf("%w: %s holds %d records, expected 1", cli.ErrUsage, file, len(rs))
	}
	return rs[0], nil
}

// writeRecords writes rs separated by "---" lines. Binary output holds
// at most one record.
func (cfg *MainConfig) writeRecords(w io.Writer, rs []*record.Record) error {
	if len(rs) > 1 && (cfg.Z || !cfg.outFormat().IsText()) {
		return fmt.Errorf("%w: cannot write %d records as one %s document", cli.ErrUsage, len(rs), cfg.outFormat())
	}
	opts := cfg.encOpts()
	for i, r := range rs {
		if i > 0 {
			if _, err := w.Write(docSep[1:]); err != nil {
				return err
			}
		}
		d, err := envelope.Marshal(r, opts...)
		if err != nil {
			return fmt.Errorf("error encoding record %d: %w", i, err)
		}
		if cfg.outFormat().IsText() && !cfg.Z && !bytes.HasSuffix(d, []byte("\n")) {
			d = append(d, '\n')
		}
		if _, err := w.Write(d); err != nil {
			return fmt.Errorf("error writing record %d: %w", i, err)
		}
	}
	return nil
}
