package store

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Codec converts records to and from their stored form.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type tomlCodec struct{}

func (tomlCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

var (
	JSON Codec = jsonCodec{}
	TOML Codec = tomlCodec{}
)

// CodecFor picks the codec from the file extension. Anything that is not
// ".toml" is stored as JSON.
func CodecFor(name string) Codec {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return TOML
	}

	return JSON
}
