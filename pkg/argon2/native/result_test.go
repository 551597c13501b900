package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {

	assert.Equal(t, "OK", Message(ResultOK))
	assert.Equal(t, "Salt is too short", Message(ResultSaltTooShort))
	assert.Equal(t, "Argon2_Context context is NULL", Message(ResultIncorrectParameter))
	assert.Equal(t, "There is no such version of argon2", Message(ResultIncorrectType))
	assert.Equal(t, "Decoding failed", Message(ResultDecodingFail))
	assert.Equal(t, "The password does not match the supplied hash", Message(ResultVerifyMismatch))
	assert.Equal(t, "Unknown error code", Message(Result(1)))
	assert.Equal(t, "Unknown error code", Message(Result(-36)))
}

func TestMessageCatalogComplete(t *testing.T) {

	for code := ResultOK; code >= ResultVerifyMismatch; code-- {
		assert.NotEqual(t, unknownResult, Message(code), "code %d", code)
	}
	assert.Len(t, messages, 36)
}

func TestNativeError(t *testing.T) {

	err := &NativeError{Result: ResultSaltTooShort}
	assert.Equal(t, "argon2: Salt is too short (-6)", err.Error())
	assert.True(t, ResultOK.OK())
	assert.False(t, ResultVerifyMismatch.OK())
}

func TestParseType(t *testing.T) {

	tests := []struct {
		name     string
		expected Type
	}{
		{"argon2d", Argon2d},
		{"d", Argon2d},
		{"argon2i", Argon2i},
		{"i", Argon2i},
		{"argon2id", Argon2id},
		{"id", Argon2id},
	}
	for _, test := range tests {
		typ, err := ParseType(test.name)
		assert.Nil(t, err)
		assert.Equal(t, test.expected, typ)
		assert.Contains(t, []string{"argon2d", "argon2i", "argon2id"}, typ.String())
	}

	typ, err := ParseType("argon3")
	assert.NotNil(t, err)
	assert.Equal(t, Type(-1), typ)
	assert.Equal(t, "", typ.String())
	assert.Equal(t, "0x13", VersionNumber.String())
}
