package argon2

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

var (
	ErrInvalidArgument     = errors.New("argon2: invalid argument")
	ErrUnsupportedPlatform = native.ErrUnsupportedPlatform
	ErrBindingFailure      = native.ErrBindingFailure
)

type NativeError = native.NativeError

// Returns the message describing a native result code
func ErrorMessage(status Result) string {
	return native.Message(status)
}

func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s cannot be nil or empty", ErrInvalidArgument, name)
}
