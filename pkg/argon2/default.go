package argon2

import (
	"crypto/rand"
	"log/slog"
	"sync"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
	"github.com/jeremyhahn/go-argon2/pkg/logging"
)

// Process-wide hasher bound to the default native library
var defaultArgon2 = sync.OnceValues(func() (*Argon2, error) {
	table, err := native.Default()
	if err != nil {
		return nil, err
	}
	return NewArgon2(logging.FromSlog(slog.Default()), table, rand.Reader), nil
})

// Default returns the hasher bound to the native library found
// beneath native.DefaultBinariesRoot. The library is bound on the first
// call; a binding failure is returned to every caller.
func Default() (*Argon2, error) {
	return defaultArgon2()
}

// Hash using the default native library, see Argon2.Hash
func Hash(password, salt []byte, ctx *Context, mode OutputMode) (HashResult, error) {
	a, err := Default()
	if err != nil {
		return HashResult{}, err
	}
	return a.Hash(password, salt, ctx, mode)
}

// ContextHash using the default native library, see Argon2.ContextHash
func ContextHash(password, salt []byte, ctx *Context) (HashResult, error) {
	a, err := Default()
	if err != nil {
		return HashResult{}, err
	}
	return a.ContextHash(password, salt, ctx)
}

// Verify using the default native library, see Argon2.Verify
func Verify(password []byte, encodedHash string, variant Type) (VerifyResult, error) {
	a, err := Default()
	if err != nil {
		return VerifyResult{}, err
	}
	return a.Verify(password, encodedHash, variant)
}

// EncodedLength using the default native library
func EncodedLength(
	timeCost, memoryCost, parallelism, saltLength, hashLength uint32,
	variant Type) (uintptr, error) {

	a, err := Default()
	if err != nil {
		return 0, err
	}
	return a.EncodedLength(timeCost, memoryCost, parallelism, saltLength, hashLength, variant), nil
}
