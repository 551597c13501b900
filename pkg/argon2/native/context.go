package native

import "unsafe"

// ContextLayout mirrors the native argon2_context structure. Field
// order and widths must not change: the native library reads this
// memory directly. Go lays out fields sequentially with the same
// alignment rules as the platform C ABI, so no explicit padding is
// declared.
type ContextLayout struct {
	Out    unsafe.Pointer
	OutLen uint32

	Pwd    unsafe.Pointer
	PwdLen uint32

	Salt    unsafe.Pointer
	SaltLen uint32

	Secret    unsafe.Pointer
	SecretLen uint32

	AD    unsafe.Pointer
	ADLen uint32

	TimeCost   uint32
	MemoryCost uint32
	Lanes      uint32
	Threads    uint32
	Version    uint32

	// Nullable allocator callbacks. Always 0 so the native library
	// uses its own allocator.
	AllocateCbk uintptr
	FreeCbk     uintptr

	Flags uint32
}

// Buffer is a pointer / length pair handed to the native library
type Buffer struct {
	Ptr unsafe.Pointer
	Len uint32
}

// Returns a Buffer over b. Empty slices produce a nil pointer with
// a zero length, never a pointer to a zero length region.
func BufferOf(b []byte) Buffer {
	if len(b) == 0 {
		return Buffer{}
	}
	return Buffer{Ptr: unsafe.Pointer(unsafe.SliceData(b)), Len: uint32(len(b))}
}

// ContextParams holds the scalar fields of a ContextLayout
type ContextParams struct {
	TimeCost    uint32
	MemoryCost  uint32
	Parallelism uint32
	Version     Version
	Flags       Flags
}

// Builds a context layout from the call buffers and scalar parameters.
// Parallelism is used for both the lane and thread count.
func NewContextLayout(out, pwd, salt, secret, ad Buffer, params ContextParams) ContextLayout {
	return ContextLayout{
		Out:         out.Ptr,
		OutLen:      out.Len,
		Pwd:         pwd.Ptr,
		PwdLen:      pwd.Len,
		Salt:        salt.Ptr,
		SaltLen:     salt.Len,
		Secret:      secret.Ptr,
		SecretLen:   secret.Len,
		AD:          ad.Ptr,
		ADLen:       ad.Len,
		TimeCost:    params.TimeCost,
		MemoryCost:  params.MemoryCost,
		Lanes:       params.Parallelism,
		Threads:     params.Parallelism,
		Version:     uint32(params.Version),
		AllocateCbk: 0,
		FreeCbk:     0,
		Flags:       uint32(params.Flags),
	}
}
