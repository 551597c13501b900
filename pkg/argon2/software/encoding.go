package software

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

type params struct {
	variant     native.Type
	version     native.Version
	timeCost    uint32
	memory      uint32
	parallelism uint32
}

// Derives the raw hash with x/crypto
func (p params) derive(password, salt []byte, keyLen uint32) ([]byte, native.Result) {
	if p.version != native.Version13 {
		return nil, native.ResultIncorrectType
	}
	if p.parallelism > math.MaxUint8 {
		return nil, native.ResultIncorrectParameter
	}
	threads := uint8(p.parallelism)
	switch p.variant {
	case native.Argon2i:
		return argon2.Key(password, salt, p.timeCost, p.memory, threads, keyLen), native.ResultOK
	case native.Argon2id:
		return argon2.IDKey(password, salt, p.timeCost, p.memory, threads, keyLen), native.ResultOK
	}
	return nil, native.ResultIncorrectType
}

// Encodes the hash in the PHC string format used by the reference
// library
func (p params) encode(salt, hash []byte) string {
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		p.variant, uint32(p.version), p.memory, p.timeCost,
		p.parallelism, b64Salt, b64Hash)
}

// Decodes an encoded hash produced for the given variant. A missing
// version field means version 0x10.
func decode(encodedHash string, variant native.Type) (p params, salt, hash []byte, result native.Result) {
	name := variant.String()
	if name == "" {
		return p, nil, nil, native.ResultIncorrectType
	}

	vals := strings.Split(encodedHash, "$")
	if len(vals) != 5 && len(vals) != 6 {
		return p, nil, nil, native.ResultDecodingFail
	}
	if vals[0] != "" || vals[1] != name {
		return p, nil, nil, native.ResultDecodingFail
	}

	p = params{variant: variant, version: native.Version10}
	if len(vals) == 6 {
		var version uint32
		if _, err := fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
			return p, nil, nil, native.ResultDecodingFail
		}
		p.version = native.Version(version)
		vals = append(vals[:2], vals[3:]...)
	}

	_, err := fmt.Sscanf(vals[2], "m=%d,t=%d,p=%d", &p.memory,
		&p.timeCost, &p.parallelism)
	if err != nil {
		return p, nil, nil, native.ResultDecodingFail
	}

	salt, err = base64.RawStdEncoding.Strict().DecodeString(vals[3])
	if err != nil {
		return p, nil, nil, native.ResultDecodingFail
	}

	hash, err = base64.RawStdEncoding.Strict().DecodeString(vals[4])
	if err != nil {
		return p, nil, nil, native.ResultDecodingFail
	}

	return p, salt, hash, native.ResultOK
}

// Number of decimal digits in num
func numLen(num uint32) int {
	n := 1
	for num >= 10 {
		num /= 10
		n++
	}
	return n
}

// Length of the unpadded base64 encoding of length bytes
func b64Len(length uint32) int {
	olen := int(length/3) << 2
	switch length % 3 {
	case 2:
		olen++
		fallthrough
	case 1:
		olen += 2
	}
	return olen
}
