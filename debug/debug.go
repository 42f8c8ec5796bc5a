// Package debug holds process-wide debug switches read from the environment.
//
// Switches are boolean environment variables parsed with strconv.ParseBool:
//
//	TREC_DEBUG_RECORD  record access (ignored reserved keys, getter type mismatches)
//	TREC_DEBUG_DECODE  envelope decoding (tag fallbacks)
//	TREC_DEBUG_STORE   store import/export
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Record bool
	Decode bool
	Store  bool
}

var d *debug

func init() {
	d = &debug{}
	Reload()
}

// Reload re-reads the switches from the environment.
func Reload() {
	d.Record = boolEnv("TREC_DEBUG_RECORD")
	d.Decode = boolEnv("TREC_DEBUG_DECODE")
	d.Store = boolEnv("TREC_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Record() bool {
	return d.Record
}
func Decode() bool {
	return d.Decode
}
func Store() bool {
	return d.Store
}
