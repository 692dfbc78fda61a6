package apimodel

import (
	"errors"
	"fmt"
)

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New("decode error")

// Static errors for err113 compliance.
var (
	ErrNotAnObject      = errors.New("payload is not a JSON object")
	ErrNegativePageSize = errors.New("negative PageSize")
)

// DecodeError reports a wire payload that could not be parsed.
type DecodeError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func decodeError(target string, err error) error {
	return &DecodeError{Target: target, Err: err}
}
