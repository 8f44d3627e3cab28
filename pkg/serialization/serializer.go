package serialization

import (
	"github.com/eigerco/serialization/pkg/serialization/codec"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// Serializer provides methods to encode and decode using a specified codec.
type Serializer struct {
	codec codec.Codec
}

// NewSerializer initializes a new Serializer with the given codec.
func NewSerializer(c codec.Codec) *Serializer {
	return &Serializer{codec: c}
}

// Encode serializes the given value using the codec.
func (s *Serializer) Encode(v any) ([]byte, error) {
	return s.codec.Marshal(v)
}

// EncodeVarint is the variable-length encoding for natural numbers up to 2^64
func (s *Serializer) EncodeVarint(v uint64) ([]byte, error) {
	return s.codec.MarshalVarint(v)
}

// EncodeFixed is the fixed-width encoding for unsigned integers
func (s *Serializer) EncodeFixed(x any, order wire.ByteOrder) ([]byte, error) {
	return s.codec.MarshalFixed(x, order)
}

// Decode deserializes the given data into the specified value using the codec.
func (s *Serializer) Decode(data []byte, v any) error {
	return s.codec.Unmarshal(data, v)
}

// DecodeVarint is the variable-length decoding for natural numbers up to 2^64
func (s *Serializer) DecodeVarint(data []byte, v *uint64) error {
	return s.codec.UnmarshalVarint(data, v)
}

// DecodeFixed is the fixed-width decoding for unsigned integers
func (s *Serializer) DecodeFixed(data []byte, v any, order wire.ByteOrder) error {
	return s.codec.UnmarshalFixed(data, v, order)
}
