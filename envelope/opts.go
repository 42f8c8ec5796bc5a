package envelope

import "github.com/signadot/trec/format"

type EncState struct {
	format   format.Format
	indent   bool
	compress bool
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent indents JSON output. YAML is always block formatted and
// CBOR is unaffected.
func EncodeIndent(v bool) EncodeOption {
	return func(es *EncState) { es.indent = v }
}

// EncodeCompress wraps the output in a zstd frame.
func EncodeCompress(v bool) EncodeOption {
	return func(es *EncState) { es.compress = v }
}

type DecState struct {
	format *format.Format
}

type DecodeOption func(*DecState)

// DecodeFormat fixes the input format instead of detecting it.
func DecodeFormat(f format.Format) DecodeOption {
	return func(ds *DecState) { ds.format = &f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
