package serializer

import "encoding/json"

// JSONSerializer encodes entities as JSON. A non-empty indent produces
// multi-line output for terminals; the zero value writes compact JSON
// for HTTP clients.
type JSONSerializer[E any] struct {
	indent string
}

func NewJSONSerializer[E any]() Serializer[E] {
	return &JSONSerializer[E]{}
}

// Returns a JSON serializer that indents nested values with indent
func NewIndentedJSONSerializer[E any](indent string) Serializer[E] {
	return &JSONSerializer[E]{indent: indent}
}

func (js JSONSerializer[E]) Serialize(entity E) ([]byte, error) {
	if js.indent == "" {
		return json.Marshal(entity)
	}
	return json.MarshalIndent(entity, "", js.indent)
}

func (js JSONSerializer[E]) Deserialize(data []byte, e any) error {
	return json.Unmarshal(data, e)
}

func (js JSONSerializer[E]) Type() SerializerType {
	return SERIALIZER_JSON
}

func (js JSONSerializer[E]) Name() string {
	return SERIALIZER_JSON.String()
}

func (js JSONSerializer[E]) Extension() string {
	return ".json"
}

// Content type written to HTTP clients
func (js JSONSerializer[E]) ContentType() string {
	return "application/json"
}
