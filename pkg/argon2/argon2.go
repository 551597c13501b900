package argon2

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"unsafe"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
	"github.com/jeremyhahn/go-argon2/pkg/logging"
)

// Argon2 hashes and verifies passwords through a native.Library.
// It holds no mutable state and is safe for concurrent use; each call
// copies and pins its own buffers.
type Argon2 struct {
	logger   *logging.Logger
	library  native.Library
	random   io.Reader
	defaults Context
}

// Creates a new hasher bound to library using DefaultContext when a
// call does not supply a context. A nil random source defaults to
// crypto/rand.
func NewArgon2(logger *logging.Logger, library native.Library, random io.Reader) *Argon2 {
	return CreateArgon2(logger, library, random, DefaultContext())
}

// Creates a new hasher using user-defined default parameters
func CreateArgon2(
	logger *logging.Logger,
	library native.Library,
	random io.Reader,
	defaults Context) *Argon2 {

	if logger == nil {
		logger = logging.NoopLogger()
	}
	if random == nil {
		random = rand.Reader
	}
	return &Argon2{
		logger:   logger,
		library:  library,
		random:   random,
		defaults: defaults,
	}
}

// Returns the underlying library
func (a *Argon2) Library() native.Library {
	return a.library
}

// Returns the context used when none is supplied
func (a *Argon2) Defaults() Context {
	return a.defaults
}

// Hash derives a hash of password with salt using the cost parameters
// in ctx. A nil or empty salt is replaced with ctx.SaltLength random
// bytes, a nil ctx with the hasher defaults. The secret and associated
// data in ctx are ignored; use ContextHash for those.
//
// In EncodedOutput mode the result holds the encoded hash string, in
// RawOutput mode the base64 encoding of the raw digest. Native failures
// are reported through HashResult.Status; the returned error is only set
// when the call could not be attempted.
func (a *Argon2) Hash(password, salt []byte, ctx *Context, mode OutputMode) (HashResult, error) {
	if len(password) == 0 {
		return HashResult{}, invalidArgument("password")
	}
	if mode != RawOutput && mode != EncodedOutput {
		return HashResult{}, fmt.Errorf("%w: output mode %d", ErrInvalidArgument, mode)
	}
	c := a.context(ctx)
	salt, err := a.resolveSalt(salt, c)
	if err != nil {
		return HashResult{}, err
	}

	var bufferLen uintptr
	if mode == EncodedOutput {
		bufferLen = a.EncodedLength(c.TimeCost, c.MemoryCost, c.Parallelism,
			uint32(len(salt)), c.HashLength, c.Type)
		if bufferLen == 0 {
			return a.failed("hash", native.ResultIncorrectType), nil
		}
	} else {
		bufferLen = uintptr(c.HashLength)
	}
	buffer := make([]byte, bufferLen)

	status := a.hash(bytes.Clone(password), salt, buffer, c, mode)
	if status != native.ResultOK {
		return a.failed("hash", status), nil
	}
	return newHashResult(buffer, mode), nil
}

func (a *Argon2) hash(password, salt, buffer []byte, c Context, mode OutputMode) Result {
	var scope pinScope
	defer scope.release()

	pwd := scope.bytes(password)
	s := scope.bytes(salt)
	out := scope.bytes(buffer)

	var hashPtr, encodedPtr unsafe.Pointer
	var encodedLen uintptr
	switch mode {
	case RawOutput:
		hashPtr = out.Ptr
	case EncodedOutput:
		encodedPtr = out.Ptr
		encodedLen = uintptr(out.Len)
	}

	return a.library.Hash(
		c.TimeCost,
		c.MemoryCost,
		c.Parallelism,
		pwd.Ptr,
		uintptr(pwd.Len),
		s.Ptr,
		uintptr(s.Len),
		hashPtr,
		uintptr(c.HashLength),
		encodedPtr,
		encodedLen,
		c.Type,
		c.Version)
}

// ContextHash derives a raw hash through the native context API,
// mixing in ctx.Secret and ctx.AssociatedData when present. The
// encoded form of the result is the base64 encoding of the raw digest.
// Password and secret are copied before the call, so the clear flags
// never wipe caller memory.
func (a *Argon2) ContextHash(password, salt []byte, ctx *Context) (HashResult, error) {
	if len(password) == 0 {
		return HashResult{}, invalidArgument("password")
	}
	c := a.context(ctx)
	salt, err := a.resolveSalt(salt, c)
	if err != nil {
		return HashResult{}, err
	}

	buffer := make([]byte, c.HashLength)

	status := a.contextHash(
		bytes.Clone(password),
		salt,
		bytes.Clone(c.Secret),
		bytes.Clone(c.AssociatedData),
		buffer,
		c)
	if status != native.ResultOK {
		return a.failed("context-hash", status), nil
	}
	return newHashResult(buffer, RawOutput), nil
}

func (a *Argon2) contextHash(password, salt, secret, ad, buffer []byte, c Context) Result {
	var scope pinScope
	defer scope.release()

	layout := native.NewContextLayout(
		scope.bytes(buffer),
		scope.bytes(password),
		scope.bytes(salt),
		scope.bytes(secret),
		scope.bytes(ad),
		native.ContextParams{
			TimeCost:    c.TimeCost,
			MemoryCost:  c.MemoryCost,
			Parallelism: c.Parallelism,
			Version:     c.Version,
			Flags:       c.Flags,
		})
	scope.pin(&layout)

	return a.library.ContextHash(&layout, c.Type)
}

// Verify reports whether password matches encodedHash. A mismatch
// returns Success false with no error text; any other native failure
// carries the error catalog message.
func (a *Argon2) Verify(password []byte, encodedHash string, variant Type) (VerifyResult, error) {
	if len(password) == 0 {
		return VerifyResult{}, invalidArgument("password")
	}
	if encodedHash == "" {
		return VerifyResult{}, invalidArgument("encoded hash")
	}

	// argon2_verify expects a C string
	encoded := append([]byte(encodedHash), 0)

	status := a.verify(encoded, bytes.Clone(password), variant)
	result := newVerifyResult(status)
	if result.Error != "" {
		a.logger.Error(&native.NativeError{Result: status}, "op", "verify")
	}
	return result, nil
}

func (a *Argon2) verify(encoded, password []byte, variant Type) Result {
	var scope pinScope
	defer scope.release()

	enc := scope.bytes(encoded)
	pwd := scope.bytes(password)

	return a.library.Verify(enc.Ptr, pwd.Ptr, uintptr(pwd.Len), variant)
}

// EncodedLength returns the buffer size, including the trailing NUL,
// needed to hold the encoded hash for the given parameters, or 0 for
// an unknown variant.
func (a *Argon2) EncodedLength(
	timeCost, memoryCost, parallelism, saltLength, hashLength uint32,
	variant Type) uintptr {

	return a.library.EncodedLength(timeCost, memoryCost, parallelism,
		saltLength, hashLength, variant)
}

// HashString hashes the UTF-8 bytes of password and salt
func (a *Argon2) HashString(password, salt string, ctx *Context, mode OutputMode) (HashResult, error) {
	return a.Hash([]byte(password), []byte(salt), ctx, mode)
}

// VerifyString verifies the UTF-8 bytes of password
func (a *Argon2) VerifyString(password, encodedHash string, variant Type) (VerifyResult, error) {
	return a.Verify([]byte(password), encodedHash, variant)
}

func (a *Argon2) context(ctx *Context) Context {
	if ctx == nil {
		return a.defaults
	}
	return *ctx
}

// Returns a call-local copy of salt, or a new random salt when salt is
// empty
func (a *Argon2) resolveSalt(salt []byte, c Context) ([]byte, error) {
	if len(salt) > 0 {
		return bytes.Clone(salt), nil
	}
	return createSalt(a.random, c.SaltLength)
}

func (a *Argon2) failed(op string, status Result) HashResult {
	a.logger.Error(&native.NativeError{Result: status}, "op", op, "library", a.library.String())
	return HashResult{Status: status}
}
