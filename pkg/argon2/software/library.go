// Package software provides a native.Library implemented in Go on top of
// golang.org/x/crypto/argon2. It speaks the same pointer level API and
// returns the same status codes as the reference C library for the
// parameter combinations x/crypto supports: Argon2i and Argon2id,
// version 0x13, up to 255 lanes, without secret or associated data.
// Requests outside that range return ResultIncorrectType or
// ResultIncorrectParameter instead of a hash.
package software

import (
	"crypto/subtle"
	"math"
	"unsafe"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

const (
	minOutLen  = 4
	minSaltLen = 8
	minMemory  = 2 * syncPoints
	maxLanes   = 0xFFFFFF
	maxThreads = 0xFFFFFF
	syncPoints = 4
)

// Library emulates the native argon2 library
type Library struct{}

var _ native.Library = (*Library)(nil)

func New() *Library {
	return &Library{}
}

func (l *Library) String() string {
	return "software:golang.org/x/crypto/argon2"
}

// Hash mirrors argon2_hash
func (l *Library) Hash(tCost, mCost, parallelism uint32,
	pwd unsafe.Pointer, pwdLen uintptr,
	salt unsafe.Pointer, saltLen uintptr,
	hash unsafe.Pointer, hashLen uintptr,
	encoded unsafe.Pointer, encodedLen uintptr,
	variant native.Type, version native.Version) native.Result {

	if pwdLen > math.MaxUint32 {
		return native.ResultPwdTooLong
	}
	if saltLen > math.MaxUint32 {
		return native.ResultSaltTooLong
	}
	if hashLen > math.MaxUint32 {
		return native.ResultOutputTooLong
	}
	if hashLen < minOutLen {
		return native.ResultOutputTooShort
	}

	in := inputs{
		out:      true,
		outLen:   uint32(hashLen),
		pwd:      pwd,
		pwdLen:   uint32(pwdLen),
		salt:     salt,
		saltLen:  uint32(saltLen),
		timeCost: tCost,
		memory:   mCost,
		lanes:    parallelism,
		threads:  parallelism,
	}
	if result := in.validate(); result != native.ResultOK {
		return result
	}
	if variant.String() == "" {
		return native.ResultIncorrectType
	}

	p := params{
		variant:     variant,
		version:     version,
		timeCost:    tCost,
		memory:      mCost,
		parallelism: parallelism,
	}
	saltBytes := bytesAt(salt, saltLen)
	key, result := p.derive(bytesAt(pwd, pwdLen), saltBytes, uint32(hashLen))
	if result != native.ResultOK {
		return result
	}

	if hash != nil {
		copy(bytesAt(hash, hashLen), key)
	}
	if encoded != nil && encodedLen > 0 {
		text := p.encode(saltBytes, key)
		if uintptr(len(text)) >= encodedLen {
			return native.ResultEncodingFail
		}
		dst := bytesAt(encoded, encodedLen)
		n := copy(dst, text)
		dst[n] = 0
	}
	return native.ResultOK
}

// EncodedLength mirrors argon2_encodedlen, including the trailing NUL.
// Unknown variants report 0.
func (l *Library) EncodedLength(tCost, mCost, parallelism, saltLen, hashLen uint32, variant native.Type) uintptr {
	name := variant.String()
	if name == "" {
		return 0
	}
	length := len("$$v=$m=,t=,p=$$") + len(name) +
		numLen(tCost) + numLen(mCost) + numLen(parallelism) +
		b64Len(saltLen) + b64Len(hashLen) +
		numLen(uint32(native.VersionNumber)) + 1
	return uintptr(length)
}

// Verify mirrors argon2_verify
func (l *Library) Verify(encoded, pwd unsafe.Pointer, pwdLen uintptr, variant native.Type) native.Result {
	if pwdLen > math.MaxUint32 {
		return native.ResultPwdTooLong
	}
	if encoded == nil {
		return native.ResultDecodingFail
	}
	p, salt, hash, result := decode(cString(encoded), variant)
	if result != native.ResultOK {
		return result
	}
	in := inputs{
		out:      true,
		outLen:   uint32(len(hash)),
		pwd:      pwd,
		pwdLen:   uint32(pwdLen),
		salt:     unsafe.Pointer(unsafe.SliceData(salt)),
		saltLen:  uint32(len(salt)),
		timeCost: p.timeCost,
		memory:   p.memory,
		lanes:    p.parallelism,
		threads:  p.parallelism,
	}
	if result := in.validate(); result != native.ResultOK {
		return result
	}
	otherHash, result := p.derive(bytesAt(pwd, pwdLen), salt, uint32(len(hash)))
	if result != native.ResultOK {
		return result
	}
	if subtle.ConstantTimeCompare(hash, otherHash) == 1 {
		return native.ResultOK
	}
	return native.ResultVerifyMismatch
}

// ContextHash mirrors argon2_ctx
func (l *Library) ContextHash(ctx *native.ContextLayout, variant native.Type) native.Result {
	if ctx == nil {
		return native.ResultIncorrectParameter
	}
	in := inputs{
		out:         ctx.Out != nil,
		outLen:      ctx.OutLen,
		pwd:         ctx.Pwd,
		pwdLen:      ctx.PwdLen,
		salt:        ctx.Salt,
		saltLen:     ctx.SaltLen,
		secret:      ctx.Secret,
		secretLen:   ctx.SecretLen,
		ad:          ctx.AD,
		adLen:       ctx.ADLen,
		timeCost:    ctx.TimeCost,
		memory:      ctx.MemoryCost,
		lanes:       ctx.Lanes,
		threads:     ctx.Threads,
		allocateCbk: ctx.AllocateCbk,
		freeCbk:     ctx.FreeCbk,
	}
	if result := in.validate(); result != native.ResultOK {
		return result
	}
	if variant.String() == "" {
		return native.ResultIncorrectType
	}
	if ctx.SecretLen > 0 || ctx.ADLen > 0 {
		return native.ResultIncorrectParameter
	}

	p := params{
		variant:     variant,
		version:     native.Version(ctx.Version),
		timeCost:    ctx.TimeCost,
		memory:      ctx.MemoryCost,
		parallelism: ctx.Lanes,
	}
	pwd := bytesAt(ctx.Pwd, uintptr(ctx.PwdLen))
	key, result := p.derive(pwd, bytesAt(ctx.Salt, uintptr(ctx.SaltLen)), ctx.OutLen)
	if result != native.ResultOK {
		return result
	}
	copy(bytesAt(ctx.Out, uintptr(ctx.OutLen)), key)

	flags := native.Flags(ctx.Flags)
	if flags&native.FlagClearPassword != 0 {
		clear(pwd)
		ctx.PwdLen = 0
	}
	if flags&native.FlagClearSecret != 0 {
		clear(bytesAt(ctx.Secret, uintptr(ctx.SecretLen)))
		ctx.SecretLen = 0
	}
	return native.ResultOK
}

// Returns the len bytes at ptr, or nil for a nil pointer
func bytesAt(ptr unsafe.Pointer, length uintptr) []byte {
	if ptr == nil || length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

// Reads a NUL terminated string
func cString(ptr unsafe.Pointer) string {
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
