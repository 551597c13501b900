package software

import (
	"encoding/hex"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

const testEncodedHash = "$argon2i$v=19$m=2048,t=3,p=1$dGVzdGluZzQ1Ng$VaMcEYLV/tlKirCtI1MOF5UfaD6BCQvbTNggdHDVLNo"

func ptr(b []byte) unsafe.Pointer {
	return native.BufferOf(b).Ptr
}

func cstr(s string) unsafe.Pointer {
	return ptr(append([]byte(s), 0))
}

func TestHashRaw(t *testing.T) {

	lib := New()
	pwd := []byte("test")
	salt := []byte("testing456")
	out := make([]byte, 32)

	result := lib.Hash(3, 4096, 1,
		ptr(pwd), uintptr(len(pwd)),
		ptr(salt), uintptr(len(salt)),
		ptr(out), uintptr(len(out)),
		nil, 0,
		native.Argon2i, native.Version13)

	require.Equal(t, native.ResultOK, result)
	assert.Equal(t,
		"40466673a1b16ff19366744ae0db8bac2fa65e2595a6c8e712108bcf62f66467",
		hex.EncodeToString(out))
}

func TestHashEncoded(t *testing.T) {

	tests := []struct {
		variant  native.Type
		expected string
	}{
		{native.Argon2i,
			"$argon2i$v=19$m=4096,t=3,p=1$dGVzdDEyMzQ$mz9PE6IpsqOkYnbENJtM7XWf01XTOBmf5MBkg1IN/Pw"},
		{native.Argon2id,
			"$argon2id$v=19$m=4096,t=3,p=1$dGVzdDEyMzQ$jg1BdrYEyA69kxTaaVT1pjCi+CraucG6wLCZ37dqkxU"},
	}

	lib := New()
	for _, test := range tests {
		pwd := []byte("test")
		salt := []byte("test1234")
		length := lib.EncodedLength(3, 4096, 1, uint32(len(salt)), 32, test.variant)
		assert.Equal(t, uintptr(len(test.expected)+1), length)

		encoded := make([]byte, length)
		result := lib.Hash(3, 4096, 1,
			ptr(pwd), uintptr(len(pwd)),
			ptr(salt), uintptr(len(salt)),
			nil, 32,
			ptr(encoded), uintptr(len(encoded)),
			test.variant, native.Version13)

		require.Equal(t, native.ResultOK, result)
		assert.Equal(t, test.expected, string(encoded[:len(encoded)-1]))
		assert.Equal(t, byte(0), encoded[len(encoded)-1])
	}
}

func TestHashEncodedBufferTooSmall(t *testing.T) {

	lib := New()
	pwd := []byte("test")
	salt := []byte("test1234")
	encoded := make([]byte, 84)

	result := lib.Hash(3, 4096, 1,
		ptr(pwd), uintptr(len(pwd)),
		ptr(salt), uintptr(len(salt)),
		nil, 32,
		ptr(encoded), uintptr(len(encoded)),
		native.Argon2i, native.Version13)

	assert.Equal(t, native.ResultEncodingFail, result)
}

func TestHashUnsupported(t *testing.T) {

	lib := New()
	pwd := []byte("test")
	salt := []byte("test1234")
	out := make([]byte, 32)

	hash := func(variant native.Type, version native.Version, parallelism uint32) native.Result {
		return lib.Hash(3, 4096, parallelism,
			ptr(pwd), uintptr(len(pwd)),
			ptr(salt), uintptr(len(salt)),
			ptr(out), uintptr(len(out)),
			nil, 0,
			variant, version)
	}

	assert.Equal(t, native.ResultIncorrectType, hash(native.Argon2d, native.Version13, 1))
	assert.Equal(t, native.ResultIncorrectType, hash(native.Type(7), native.Version13, 1))
	assert.Equal(t, native.ResultIncorrectType, hash(native.Argon2i, native.Version10, 1))
	assert.Equal(t, native.ResultIncorrectParameter, hash(native.Argon2i, native.Version13, 256))
}

func TestEncodedLength(t *testing.T) {

	lib := New()

	assert.Equal(t, uintptr(85), lib.EncodedLength(3, 4096, 1, 8, 32, native.Argon2i))
	assert.Equal(t, uintptr(86), lib.EncodedLength(3, 4096, 1, 8, 32, native.Argon2id))
	assert.Equal(t, uintptr(85), lib.EncodedLength(3, 4096, 1, 8, 32, native.Argon2d))
	assert.Equal(t, uintptr(0), lib.EncodedLength(3, 4096, 1, 8, 32, native.Type(-1)))
	assert.Equal(t, "software:golang.org/x/crypto/argon2", lib.String())
}

func TestVerify(t *testing.T) {

	lib := New()

	verify := func(encoded, password string, variant native.Type) native.Result {
		pwd := []byte(password)
		return lib.Verify(cstr(encoded), ptr(pwd), uintptr(len(pwd)), variant)
	}

	assert.Equal(t, native.ResultOK, verify(testEncodedHash, "test", native.Argon2i))
	assert.Equal(t, native.ResultVerifyMismatch, verify(testEncodedHash, "testing1234", native.Argon2i))
	assert.Equal(t, native.ResultDecodingFail, verify(testEncodedHash, "test", native.Argon2id))
	assert.Equal(t, native.ResultIncorrectType, verify(testEncodedHash, "test", native.Type(-1)))
	assert.Equal(t, native.ResultDecodingFail,
		verify("$argon2i$v=19$m=2048,t=3,p=1$VaMcEYLV/tlKirCtI1MOF5UfaD6BCQvbTNggdHDVLNo", "test", native.Argon2i))
	assert.Equal(t, native.ResultDecodingFail, verify("not a hash", "test", native.Argon2i))
	assert.Equal(t, native.ResultDecodingFail, lib.Verify(nil, nil, 0, native.Argon2i))
}

func TestContextHash(t *testing.T) {

	lib := New()
	out := make([]byte, 32)
	pwd := []byte("test")
	salt := []byte("testing456")

	layout := native.NewContextLayout(
		native.BufferOf(out),
		native.BufferOf(pwd),
		native.BufferOf(salt),
		native.BufferOf(nil),
		native.BufferOf(nil),
		native.ContextParams{
			TimeCost:    3,
			MemoryCost:  4096,
			Parallelism: 1,
			Version:     native.Version13,
			Flags:       native.FlagClearPassword | native.FlagClearSecret,
		})

	result := lib.ContextHash(&layout, native.Argon2i)
	require.Equal(t, native.ResultOK, result)
	assert.Equal(t,
		"40466673a1b16ff19366744ae0db8bac2fa65e2595a6c8e712108bcf62f66467",
		hex.EncodeToString(out))
	assert.Equal(t, []byte{0, 0, 0, 0}, pwd)
	assert.Equal(t, uint32(0), layout.PwdLen)
	assert.Equal(t, []byte("testing456"), salt)
}

func TestContextHashRejects(t *testing.T) {

	lib := New()

	newLayout := func(secret []byte) native.ContextLayout {
		return native.NewContextLayout(
			native.BufferOf(make([]byte, 32)),
			native.BufferOf([]byte("test")),
			native.BufferOf([]byte("testing456")),
			native.BufferOf(secret),
			native.BufferOf(nil),
			native.ContextParams{
				TimeCost:    3,
				MemoryCost:  4096,
				Parallelism: 1,
				Version:     native.Version13,
			})
	}

	assert.Equal(t, native.ResultIncorrectParameter, lib.ContextHash(nil, native.Argon2i))

	layout := newLayout([]byte("secret-key"))
	assert.Equal(t, native.ResultIncorrectParameter, lib.ContextHash(&layout, native.Argon2i))

	layout = newLayout(nil)
	assert.Equal(t, native.ResultIncorrectType, lib.ContextHash(&layout, native.Type(3)))

	layout = newLayout(nil)
	layout.AllocateCbk = 1
	assert.Equal(t, native.ResultFreeMemoryCbkNull, lib.ContextHash(&layout, native.Argon2i))
}
