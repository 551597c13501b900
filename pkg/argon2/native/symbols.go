package native

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/spf13/afero"
)

const (
	SymbolHash          = "argon2_hash"
	SymbolEncodedLength = "argon2_encodedlen"
	SymbolVerify        = "argon2_verify"
	SymbolContextHash   = "argon2_ctx"

	// Environment variable overriding the default binaries root
	EnvBinariesRoot = "ARGON2_BINARIES_ROOT"
)

// SymbolTable holds the functions bound to an opened native library.
// It is immutable once Open returns and safe for concurrent use. Close
// must not run concurrently with other calls; once closed, every call
// reports ResultIncorrectParameter (EncodedLength reports 0).
type SymbolTable struct {
	path   string
	handle uintptr
	shared bool

	hash func(tCost, mCost, parallelism uint32,
		pwd unsafe.Pointer, pwdLen uintptr,
		salt unsafe.Pointer, saltLen uintptr,
		out unsafe.Pointer, outLen uintptr,
		encoded unsafe.Pointer, encodedLen uintptr,
		variant int32, version uint32) int32
	encodedLength func(tCost, mCost, parallelism, saltLen, hashLen uint32, variant int32) uintptr
	verify        func(encoded, pwd unsafe.Pointer, pwdLen uintptr, variant int32) int32
	contextHash   func(ctx unsafe.Pointer, variant int32) int32
}

var loadDefault = sync.OnceValues(func() (*SymbolTable, error) {
	table, err := Open(afero.NewOsFs(), DefaultBinariesRoot())
	if err != nil {
		return nil, err
	}
	table.shared = true
	return table, nil
})

// Default returns the process-wide symbol table, binding it on first
// use. Concurrent first callers block until the single binding pass
// completes and all observe the same table or error.
func Default() (*SymbolTable, error) {
	return loadDefault()
}

// Returns $ARGON2_BINARIES_ROOT, or the argon2binaries folder next
// to the running executable.
func DefaultBinariesRoot() string {
	if root := os.Getenv(EnvBinariesRoot); root != "" {
		return root
	}
	exe, err := os.Executable()
	if err != nil {
		return BinariesFolder
	}
	return filepath.Join(filepath.Dir(exe), BinariesFolder)
}

// Locate returns the path of the native binary for the running
// platform beneath root, ensuring it exists on fs.
func Locate(fs afero.Fs, root string) (string, error) {
	platform, err := CurrentPlatform()
	if err != nil {
		return "", err
	}
	return LocateFor(fs, root, platform)
}

// LocateFor is Locate for an explicit platform
func LocateFor(fs afero.Fs, root string, platform Platform) (string, error) {
	path, err := BinaryPath(root, platform)
	if err != nil {
		return "", bindingError("%s: %v", root, err)
	}
	info, err := fs.Stat(path)
	if err != nil {
		return "", bindingError("native binary not found at %s", path)
	}
	if info.IsDir() {
		return "", bindingError("native binary path %s is a directory", path)
	}
	return path, nil
}

// Open locates the native binary beneath root and binds its symbols.
func Open(fs afero.Fs, root string) (*SymbolTable, error) {
	path, err := Locate(fs, root)
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath loads the shared library at path and binds the four
// required symbols. The library is released if any symbol is missing.
func OpenPath(path string) (*SymbolTable, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBindingFailure, path, err)
	}
	table := &SymbolTable{path: path, handle: handle}
	bindings := []struct {
		name string
		fptr any
	}{
		{SymbolHash, &table.hash},
		{SymbolEncodedLength, &table.encodedLength},
		{SymbolVerify, &table.verify},
		{SymbolContextHash, &table.contextHash},
	}
	for _, binding := range bindings {
		addr, err := lookupSymbol(handle, binding.name)
		if err != nil || addr == 0 {
			closeLibrary(handle)
			return nil, bindingError("symbol %s not found in %s", binding.name, path)
		}
		registerFunc(binding.fptr, addr)
	}
	return table, nil
}

// Path returns the file the table was bound from
func (st *SymbolTable) Path() string {
	return st.path
}

func (st *SymbolTable) String() string {
	return fmt.Sprintf("native:%s", st.path)
}

// Close releases the library handle. The process-wide default table
// is never released.
func (st *SymbolTable) Close() error {
	if st.shared || st.handle == 0 {
		return nil
	}
	handle := st.handle
	st.handle = 0
	st.hash = nil
	st.encodedLength = nil
	st.verify = nil
	st.contextHash = nil
	return closeLibrary(handle)
}

func (st *SymbolTable) Hash(tCost, mCost, parallelism uint32,
	pwd unsafe.Pointer, pwdLen uintptr,
	salt unsafe.Pointer, saltLen uintptr,
	hash unsafe.Pointer, hashLen uintptr,
	encoded unsafe.Pointer, encodedLen uintptr,
	variant Type, version Version) Result {

	if st.hash == nil {
		return ResultIncorrectParameter
	}
	return Result(st.hash(tCost, mCost, parallelism,
		pwd, pwdLen, salt, saltLen, hash, hashLen, encoded, encodedLen,
		int32(variant), uint32(version)))
}

// EncodedLength reports 0 for variants the library has no name for;
// argon2_encodedlen would dereference a NULL type string.
func (st *SymbolTable) EncodedLength(tCost, mCost, parallelism, saltLen, hashLen uint32, variant Type) uintptr {
	if st.encodedLength == nil || variant.String() == "" {
		return 0
	}
	return st.encodedLength(tCost, mCost, parallelism, saltLen, hashLen, int32(variant))
}

func (st *SymbolTable) Verify(encoded, pwd unsafe.Pointer, pwdLen uintptr, variant Type) Result {
	if st.verify == nil {
		return ResultIncorrectParameter
	}
	return Result(st.verify(encoded, pwd, pwdLen, int32(variant)))
}

func (st *SymbolTable) ContextHash(ctx *ContextLayout, variant Type) Result {
	if st.contextHash == nil {
		return ResultIncorrectParameter
	}
	return Result(st.contextHash(unsafe.Pointer(ctx), int32(variant)))
}
