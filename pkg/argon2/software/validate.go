package software

import (
	"unsafe"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

// inputs holds the fields checked by the reference validate_inputs
type inputs struct {
	out       bool
	outLen    uint32
	pwd       unsafe.Pointer
	pwdLen    uint32
	salt      unsafe.Pointer
	saltLen   uint32
	secret    unsafe.Pointer
	secretLen uint32
	ad        unsafe.Pointer
	adLen     uint32

	timeCost uint32
	memory   uint32
	lanes    uint32
	threads  uint32

	allocateCbk uintptr
	freeCbk     uintptr
}

// Checks are applied in the same order as the reference library so
// the first violation reports the same status code.
func (in inputs) validate() native.Result {
	if !in.out {
		return native.ResultOutputPtrNull
	}
	if in.outLen < minOutLen {
		return native.ResultOutputTooShort
	}
	if in.pwd == nil && in.pwdLen != 0 {
		return native.ResultPwdPtrMismatch
	}
	if in.salt == nil && in.saltLen != 0 {
		return native.ResultSaltPtrMismatch
	}
	if in.saltLen < minSaltLen {
		return native.ResultSaltTooShort
	}
	if in.secret == nil && in.secretLen != 0 {
		return native.ResultSecretPtrMismatch
	}
	if in.ad == nil && in.adLen != 0 {
		return native.ResultAdPtrMismatch
	}
	if in.memory < minMemory {
		return native.ResultMemoryTooLittle
	}
	if uint64(in.memory) < 2*syncPoints*uint64(in.lanes) {
		return native.ResultMemoryTooLittle
	}
	if in.timeCost < 1 {
		return native.ResultTimeTooSmall
	}
	if in.lanes < 1 {
		return native.ResultLanesTooFew
	}
	if in.lanes > maxLanes {
		return native.ResultLanesTooMany
	}
	if in.threads < 1 {
		return native.ResultThreadsTooFew
	}
	if in.threads > maxThreads {
		return native.ResultThreadsTooMany
	}
	if in.allocateCbk != 0 && in.freeCbk == 0 {
		return native.ResultFreeMemoryCbkNull
	}
	if in.allocateCbk == 0 && in.freeCbk != 0 {
		return native.ResultAllocateMemoryCbkNull
	}
	return native.ResultOK
}
