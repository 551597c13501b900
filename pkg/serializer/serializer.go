package serializer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSerializer = errors.New("serializer: invalid serializer")
)

type SerializerType uint8

const (
	SERIALIZER_JSON SerializerType = iota
	SERIALIZER_YAML
)

type Serializer[E any] interface {
	Serialize(entity E) ([]byte, error)
	Deserialize(data []byte, e any) error
	Type() SerializerType
	Name() string
	Extension() string
}

func (st SerializerType) String() string {
	switch st {
	case SERIALIZER_JSON:
		return "json"
	case SERIALIZER_YAML:
		return "yaml"
	}
	return fmt.Sprintf("%d", uint8(st))
}

// Parses a serializer name (json, yaml, yml)
func ParseSerializer(name string) (SerializerType, error) {
	switch strings.ToLower(name) {
	case "json":
		return SERIALIZER_JSON, nil
	case "yaml", "yml":
		return SERIALIZER_YAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidSerializer, name)
}

// Returns a new serializer of the requested type
func NewSerializer[E any](serializerType SerializerType) (Serializer[E], error) {
	switch serializerType {
	case SERIALIZER_JSON:
		return NewJSONSerializer[E](), nil
	case SERIALIZER_YAML:
		return NewYAMLSerializer[E](), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidSerializer, serializerType)
}
