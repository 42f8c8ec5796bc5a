package record

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrTypeMismatch = errors.New("type mismatch")
)

// MismatchError reports a read of key as Want when it holds Got.
type MismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: key %q holds %s, not %s", ErrTypeMismatch, e.Key, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}
