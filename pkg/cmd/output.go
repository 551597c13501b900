package cmd

import (
	"fmt"
	"io"

	"github.com/jeremyhahn/go-argon2/pkg/serializer"
)

// Writes text in text mode, otherwise the serialized entity
func writeOutput(w io.Writer, entity any, text string) error {
	if outputFormat == "" || outputFormat == "text" {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	serializerType, err := serializer.ParseSerializer(outputFormat)
	if err != nil {
		return err
	}
	var s serializer.Serializer[any]
	if serializerType == serializer.SERIALIZER_JSON {
		s = serializer.NewIndentedJSONSerializer[any]("  ")
	} else {
		s, err = serializer.NewSerializer[any](serializerType)
		if err != nil {
			return err
		}
	}
	data, err := s.Serialize(entity)
	if err != nil {
		return err
	}
	if serializerType == serializer.SERIALIZER_JSON {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
