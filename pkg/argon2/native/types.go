package native

import "fmt"

// Argon2 variant, mirrors argon2_type
type Type int32

const (
	Argon2d  Type = 0
	Argon2i  Type = 1
	Argon2id Type = 2
)

// Argon2 algorithm version, mirrors argon2_version
type Version uint32

const (
	Version10     Version = 0x10
	Version13     Version = 0x13
	VersionNumber         = Version13
)

// Context flags, mirrors the ARGON2_FLAG_* constants
type Flags uint32

const (
	FlagDefault       Flags = 0
	FlagClearPassword Flags = 1 << 0
	FlagClearSecret   Flags = 1 << 1
)

// Returns the lower case variant name used in encoded hashes,
// or an empty string if the type is unknown.
func (t Type) String() string {
	switch t {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	}
	return ""
}

// Parses a variant name (argon2d, argon2i, argon2id, d, i, id)
func ParseType(name string) (Type, error) {
	switch name {
	case "argon2d", "d":
		return Argon2d, nil
	case "argon2i", "i":
		return Argon2i, nil
	case "argon2id", "id":
		return Argon2id, nil
	}
	return -1, fmt.Errorf("argon2: unknown type %q", name)
}

func (v Version) String() string {
	return fmt.Sprintf("0x%x", uint32(v))
}
