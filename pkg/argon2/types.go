package argon2

import "github.com/jeremyhahn/go-argon2/pkg/argon2/native"

type (
	Type    = native.Type
	Version = native.Version
	Flags   = native.Flags
	Result  = native.Result
)

const (
	Argon2d  = native.Argon2d
	Argon2i  = native.Argon2i
	Argon2id = native.Argon2id

	Version10     = native.Version10
	Version13     = native.Version13
	VersionNumber = native.VersionNumber

	FlagDefault       = native.FlagDefault
	FlagClearPassword = native.FlagClearPassword
	FlagClearSecret   = native.FlagClearSecret
)

const (
	DefaultTimeCost    uint32 = 3
	DefaultMemoryCost  uint32 = 1 << 12
	DefaultParallelism uint32 = 1
	DefaultSaltLength  uint32 = 16
	DefaultHashLength  uint32 = 32
	DefaultType               = Argon2i
	DefaultVersion            = VersionNumber
	DefaultFlags              = FlagClearPassword | FlagClearSecret
)

// OutputMode selects whether Hash produces the raw digest or the
// encoded hash string.
type OutputMode int

const (
	RawOutput OutputMode = iota
	EncodedOutput
)

func (m OutputMode) String() string {
	switch m {
	case RawOutput:
		return "raw"
	case EncodedOutput:
		return "encoded"
	}
	return "unknown"
}

// Context holds the input parameters of a hashing operation.
// Out of range values are not checked locally; the native library
// reports them through the result status.
type Context struct {
	TimeCost       uint32  `yaml:"time-cost" json:"time_cost" mapstructure:"time-cost"`
	MemoryCost     uint32  `yaml:"memory-cost" json:"memory_cost" mapstructure:"memory-cost"`
	Parallelism    uint32  `yaml:"parallelism" json:"parallelism" mapstructure:"parallelism"`
	SaltLength     uint32  `yaml:"salt-len" json:"salt_len" mapstructure:"salt-len"`
	HashLength     uint32  `yaml:"hash-len" json:"hash_len" mapstructure:"hash-len"`
	Type           Type    `yaml:"type" json:"type" mapstructure:"type"`
	Version        Version `yaml:"version" json:"version" mapstructure:"version"`
	Flags          Flags   `yaml:"flags" json:"flags" mapstructure:"flags"`
	Secret         []byte  `yaml:"-" json:"-" mapstructure:"-"`
	AssociatedData []byte  `yaml:"-" json:"-" mapstructure:"-"`
}

// Returns a context populated with the library defaults:
//
// TimeCost: 3
// MemoryCost: 4096
// Parallelism: 1
// SaltLength: 16
// HashLength: 32
// Type: Argon2i
// Version: 0x13
// Flags: ClearPassword | ClearSecret
func DefaultContext() Context {
	return Context{
		TimeCost:    DefaultTimeCost,
		MemoryCost:  DefaultMemoryCost,
		Parallelism: DefaultParallelism,
		SaltLength:  DefaultSaltLength,
		HashLength:  DefaultHashLength,
		Type:        DefaultType,
		Version:     DefaultVersion,
		Flags:       DefaultFlags,
	}
}

// Returns a context with stronger memory settings suitable for
// interactive logins.
func ReasonableContext(t Type) Context {
	ctx := DefaultContext()
	ctx.MemoryCost = 1 << 16
	ctx.Type = t
	return ctx
}
