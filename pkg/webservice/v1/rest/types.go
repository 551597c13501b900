package rest

import (
	"encoding/hex"

	"github.com/jeremyhahn/go-argon2/pkg/argon2"
)

// Parameters shared by the hash requests. Zero values fall back to
// the server defaults.
type ContextRequest struct {
	TimeCost    uint32 `yaml:"time_cost" json:"time_cost"`
	MemoryCost  uint32 `yaml:"memory_cost" json:"memory_cost"`
	Parallelism uint32 `yaml:"parallelism" json:"parallelism"`
	SaltLength  uint32 `yaml:"salt_len" json:"salt_len"`
	HashLength  uint32 `yaml:"hash_len" json:"hash_len"`
	Type        string `yaml:"type" json:"type"`
	Version     uint32 `yaml:"version" json:"version"`
}

type HashRequest struct {
	Password string `yaml:"password" json:"password"`
	Salt     string `yaml:"salt" json:"salt"`
	Raw      bool   `yaml:"raw" json:"raw"`
	ContextRequest
}

type ContextHashRequest struct {
	Password       string `yaml:"password" json:"password"`
	Salt           string `yaml:"salt" json:"salt"`
	Secret         string `yaml:"secret" json:"secret"`
	AssociatedData string `yaml:"associated_data" json:"associated_data"`
	ContextRequest
}

type VerifyRequest struct {
	Password string `yaml:"password" json:"password"`
	Encoded  string `yaml:"encoded" json:"encoded"`
	Type     string `yaml:"type" json:"type"`
}

type HashResponse struct {
	Status  int32  `yaml:"status" json:"status"`
	Message string `yaml:"message" json:"message"`
	Raw     string `yaml:"raw" json:"raw"`
	Encoded string `yaml:"encoded" json:"encoded"`
}

type EncodedLengthResponse struct {
	Length uint64 `yaml:"length" json:"length"`
}

func NewHashResponse(result argon2.HashResult) HashResponse {
	return HashResponse{
		Status:  int32(result.Status),
		Message: result.Status.String(),
		Raw:     hex.EncodeToString(result.Raw),
		Encoded: result.Encoded,
	}
}
