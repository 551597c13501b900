package argon2

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

// HashResult is the outcome of Hash and ContextHash. On failure Raw
// and Encoded are empty.
type HashResult struct {
	Status  Result `yaml:"status" json:"status"`
	Raw     []byte `yaml:"raw" json:"raw"`
	Encoded string `yaml:"encoded" json:"encoded"`
}

func newHashResult(buffer []byte, mode OutputMode) HashResult {
	result := HashResult{Status: native.ResultOK, Raw: buffer}
	if mode == EncodedOutput {
		text := buffer
		if i := bytes.IndexByte(text, 0); i >= 0 {
			text = text[:i]
		}
		result.Encoded = string(text)
	} else {
		result.Encoded = base64.StdEncoding.EncodeToString(buffer)
	}
	return result
}

func (r HashResult) OK() bool {
	return r.Status == native.ResultOK
}

// Returns a *NativeError for a failed result, nil otherwise
func (r HashResult) Err() error {
	if r.OK() {
		return nil
	}
	return &native.NativeError{Result: r.Status}
}

func (r HashResult) String() string {
	return fmt.Sprintf("HashResult { Status: %s, Raw: %s, Encoded: %s }",
		r.Status, hex.EncodeToString(r.Raw), r.Encoded)
}

// VerifyResult is the outcome of Verify. A mismatch is reported
// with Success false and an empty Error.
type VerifyResult struct {
	Success bool   `yaml:"success" json:"success"`
	Status  Result `yaml:"status" json:"status"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
}

func newVerifyResult(status Result) VerifyResult {
	switch status {
	case native.ResultOK:
		return VerifyResult{Success: true, Status: status}
	case native.ResultVerifyMismatch:
		return VerifyResult{Status: status}
	}
	return VerifyResult{Status: status, Error: ErrorMessage(status)}
}

func (r VerifyResult) String() string {
	return fmt.Sprintf("VerifyResult { Success: %t, Error: %s }", r.Success, r.Error)
}
