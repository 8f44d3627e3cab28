package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// CBORCodec implements the Codec interface for CBOR using Core Deterministic Encoding
// (RFC 8949 §4.2), so the same logical data always produces identical bytes.
// CBOR integers are already variable length and byte order is ignored.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBORCodec builds the encoder and decoder modes. Types implementing
// encoding.TextMarshaler are written as CBOR text strings.
func NewCBORCodec() (*CBORCodec, error) {
	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	enc, err := encOptions.EncMode()
	if err != nil {
		return nil, err
	}

	dec, err := cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		return nil, err
	}
	return &CBORCodec{enc: enc, dec: dec}, nil
}

func (c *CBORCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c *CBORCodec) MarshalVarint(v uint64) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c *CBORCodec) MarshalFixed(x any, _ wire.ByteOrder) ([]byte, error) {
	return c.enc.Marshal(x)
}

func (c *CBORCodec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

func (c *CBORCodec) UnmarshalVarint(data []byte, v *uint64) error {
	return c.dec.Unmarshal(data, v)
}

func (c *CBORCodec) UnmarshalFixed(data []byte, x any, _ wire.ByteOrder) error {
	return c.dec.Unmarshal(data, x)
}
