package native

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedPlatform = errors.New("argon2: platform not currently supported")
	ErrBindingFailure      = errors.New("argon2: unable to bind native library")
)

// NativeError carries a non-OK status returned by the native library
// for callers that prefer an error value over inspecting a result.
type NativeError struct {
	Result Result
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("argon2: %s (%d)", Message(e.Result), int32(e.Result))
}

func bindingError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBindingFailure, fmt.Sprintf(format, args...))
}
