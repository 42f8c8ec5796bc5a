package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/trec/debug"
	"github.com/signadot/trec/format"

	"github.com/tidwall/jsonc"
)

// FileConfig holds defaults read from a JSONC file, for example
//
//	{
//	  // records are kept as yaml
//	  "in": "yaml",
//	  "out": "yaml",
//	  "color": true,
//	}
type FileConfig struct {
	In       *format.Format `json:"in"`
	Out      *format.Format `json:"out"`
	Color    *bool          `json:"color"`
	Compress bool           `json:"compress"`
	Indent   bool           `json:"indent"`
}

func parseFileConfig(data []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	if err := json.Unmarshal(jsonc.ToJSON(data), fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return fc, nil
}

func readFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	fc, err := parseFileConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// applyDefaults fills options not given on the command line, first from
// TREC_IN_FORMAT and TREC_OUT_FORMAT, then from the config file.
func (cfg *MainConfig) applyDefaults() error {
	if cfg.Verbose {
		debug.SetLogger(theLog)
	}
	for _, ev := range []struct {
		name string
		fp   **format.Format
	}{
		{"TREC_IN_FORMAT", &cfg.InFormat},
		{"TREC_OUT_FORMAT", &cfg.OutFormat},
	} {
		v := os.Getenv(ev.name)
		if v == "" || *ev.fp != nil {
			continue
		}
		f, err := format.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", ev.name, err)
		}
		*ev.fp = &f
	}
	path := cfg.Config
	if path == "" {
		path = os.Getenv("TREC_CONFIG")
	}
	if path == "" {
		return nil
	}
	fc, err := readFileConfig(path)
	if err != nil {
		return err
	}
	cfg.file = fc
	if cfg.InFormat == nil {
		cfg.InFormat = fc.In
	}
	if cfg.OutFormat == nil {
		cfg.OutFormat = fc.Out
	}
	if !cfg.optSet("z") {
		cfg.Z = cfg.Z || fc.Compress
	}
	if !cfg.optSet("indent") {
		cfg.Indent = cfg.Indent || fc.Indent
	}
	if cfg.Verbose {
		theLog.Info("loaded config", "path", path)
	}
	return nil
}
