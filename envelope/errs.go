package envelope

import (
	"errors"
	"strings"
)

var ErrDecode = errors.New("decode error")

// DecodeError reports a malformed envelope. Path is the dotted key path of
// the offending entry, empty for the document itself.
type DecodeError struct {
	Path string
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrDecode.Error())
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
