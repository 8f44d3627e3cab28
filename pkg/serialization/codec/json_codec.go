package codec

import (
	"encoding/json"

	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// JSONCodec implements the Codec interface for JSON encoding and decoding.
// Byte order has no meaning in JSON and is ignored.
type JSONCodec struct{}

func (j *JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (j *JSONCodec) MarshalVarint(v uint64) ([]byte, error) {
	return json.Marshal(v)
}

func (j *JSONCodec) MarshalFixed(x any, _ wire.ByteOrder) ([]byte, error) {
	return json.Marshal(x)
}

func (j *JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (j *JSONCodec) UnmarshalVarint(data []byte, v *uint64) error {
	return json.Unmarshal(data, v)
}

func (j *JSONCodec) UnmarshalFixed(data []byte, x any, _ wire.ByteOrder) error {
	return json.Unmarshal(data, x)
}
