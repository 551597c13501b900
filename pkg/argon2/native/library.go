package native

import "unsafe"

// Library is the native argon2 API surface. Arguments follow the C
// prototypes exactly; implementations must not retain any pointer
// beyond the call.
type Library interface {
	// argon2_hash: exactly one of hash / encoded is non-nil
	Hash(tCost, mCost, parallelism uint32,
		pwd unsafe.Pointer, pwdLen uintptr,
		salt unsafe.Pointer, saltLen uintptr,
		hash unsafe.Pointer, hashLen uintptr,
		encoded unsafe.Pointer, encodedLen uintptr,
		variant Type, version Version) Result

	// argon2_encodedlen: size of the encoded text including the
	// trailing NUL
	EncodedLength(tCost, mCost, parallelism, saltLen, hashLen uint32, variant Type) uintptr

	// argon2_verify: encoded must be NUL terminated
	Verify(encoded, pwd unsafe.Pointer, pwdLen uintptr, variant Type) Result

	// argon2_ctx
	ContextHash(ctx *ContextLayout, variant Type) Result

	// Describes the library for logging
	String() string
}
