package serializer

import "gopkg.in/yaml.v2"

type YAMLSerializer[E any] struct{}

func NewYAMLSerializer[E any]() Serializer[E] {
	return &YAMLSerializer[E]{}
}

func (ys YAMLSerializer[E]) Serialize(entity E) ([]byte, error) {
	return yaml.Marshal(entity)
}

func (ys YAMLSerializer[E]) Deserialize(data []byte, e any) error {
	if err := yaml.Unmarshal(data, e); err != nil {
		return err
	}
	return nil
}

func (ys YAMLSerializer[E]) Type() SerializerType {
	return SERIALIZER_YAML
}

func (ys YAMLSerializer[E]) Name() string {
	return "yaml"
}

func (ys YAMLSerializer[E]) Extension() string {
	return ".yaml"
}

func (ys YAMLSerializer[E]) ContentType() string {
	return "application/yaml"
}
