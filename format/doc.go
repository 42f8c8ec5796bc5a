// Package format names the wire formats an envelope can be written in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	data, err := envelope.Marshal(rec, envelope.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/trec/envelope - Encode records into envelopes and wire formats
package format
