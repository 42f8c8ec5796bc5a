package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/trec/format"
	"github.com/signadot/trec/record"
)

// Marshal encodes r and writes its envelope in the configured format,
// JSON by default.
func Marshal(r *record.Record, opts ...EncodeOption) ([]byte, error) {
	return Encode(r).Marshal(opts...)
}

// Marshal writes the envelope in the configured format.
func (e *Envelope) Marshal(opts ...EncodeOption) ([]byte, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.JSONFormat:
		d, err = e.MarshalJSON()
		if err == nil && es.indent {
			buf := &bytes.Buffer{}
			if err = json.Indent(buf, d, "", "  "); err == nil {
				buf.WriteByte('\n')
				d = buf.Bytes()
			}
		}
	case format.YAMLFormat:
		d, err = marshalYAML(e)
	case format.CBORFormat:
		d, err = marshalCBOR(e)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	if es.compress {
		d = compress(d)
	}
	return d, nil
}

// Write writes the envelope of r to w.
func Write(w io.Writer, r *record.Record, opts ...EncodeOption) error {
	d, err := Marshal(r, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Parse reads an envelope. Compressed input is detected by its zstd
// magic; without DecodeFormat the format is detected by Detect.
func Parse(data []byte, opts ...DecodeOption) (*Envelope, error) {
	ds := &DecState{}
	for _, opt := range opts {
		opt(ds)
	}
	if IsCompressed(data) {
		d, err := decompress(data)
		if err != nil {
			return nil, &DecodeError{Msg: "invalid compressed input", Err: err}
		}
		data = d
	}
	f := Detect(data)
	if ds.format != nil {
		f = *ds.format
	}
	switch f {
	case format.JSONFormat:
		env := &Envelope{}
		if err := env.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return env, nil
	case format.YAMLFormat:
		return parseYAML(data)
	case format.CBORFormat:
		return parseCBOR(data)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

// Unmarshal parses data and decodes the record it holds.
func Unmarshal(data []byte, opts ...DecodeOption) (*record.Record, error) {
	env, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return Decode(env)
}

// Read reads all of rd and decodes the record it holds.
func Read(rd io.Reader, opts ...DecodeOption) (*record.Record, error) {
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Unmarshal(d, opts...)
}

// Detect guesses the format of uncompressed data: a leading '{' (after
// white space) is JSON, a CBOR map header is CBOR, anything else YAML.
func Detect(data []byte) format.Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return format.JSONFormat
	}
	// major type 5 (map), definite or indefinite length
	if len(data) > 0 && data[0]>>5 == 5 {
		return format.CBORFormat
	}
	return format.YAMLFormat
}
