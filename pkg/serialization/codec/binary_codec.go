package codec

import (
	"fmt"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"

	"github.com/eigerco/serialization/pkg/log"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// BinaryCodec implements the Codec interface for the wire format.
//
// Marshal accepts wire.Encodable values, booleans, fixed-width unsigned integers
// (little-endian) and byte slices (written raw). Unmarshal accepts pointers to the same.
type BinaryCodec struct{}

// NewBinaryCodec initializes an instance of the wire codec
func NewBinaryCodec() *BinaryCodec {
	return &BinaryCodec{}
}

func (b *BinaryCodec) Marshal(v any) ([]byte, error) {
	if e, ok := v.(wire.Encodable); ok {
		return wire.Marshal(e), nil
	}
	switch x := v.(type) {
	case bool:
		w := wire.NewWriter()
		w.Bool(x)
		return w.Data(), nil
	case []byte:
		return wire.NewWriterFrom(x).Data(), nil
	default:
		return b.MarshalFixed(v, wire.LittleEndian)
	}
}

func (b *BinaryCodec) MarshalVarint(x uint64) ([]byte, error) {
	return wire.EncodeVarint(x), nil
}

// MarshalFixed packs an unsigned integer of any supported width in the given order.
func (b *BinaryCodec) MarshalFixed(x any, order wire.ByteOrder) ([]byte, error) {
	switch v := x.(type) {
	case uint8:
		return wire.Pack(v, order), nil
	case uint16:
		return wire.Pack(v, order), nil
	case uint32:
		return wire.Pack(v, order), nil
	case uint64:
		return wire.Pack(v, order), nil
	case uint128.Uint128:
		return wire.PackUint128(v, order), nil
	case uint256.Int:
		return wire.PackUint256(v, order), nil
	case *uint256.Int:
		return wire.PackUint256(*v, order), nil
	default:
		return nil, unsupported(x)
	}
}

func (b *BinaryCodec) Unmarshal(data []byte, v any) error {
	if d, ok := v.(wire.Decodable); ok {
		return wire.Unmarshal(data, d)
	}
	switch x := v.(type) {
	case *bool:
		r := wire.NewReader(data)
		return decodeInto(x, r, r.Bool)
	case *[]byte:
		*x = wire.NewReader(data).Unread()
		return nil
	default:
		return b.UnmarshalFixed(data, v, wire.LittleEndian)
	}
}

// UnmarshalVarint decodes a varint that must span all of data.
func (b *BinaryCodec) UnmarshalVarint(data []byte, v *uint64) error {
	x, n, err := wire.DecodeVarint[uint64](data, 0)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", wire.ErrSizeMismatch, len(data)-n)
	}
	*v = x
	return nil
}

// UnmarshalFixed unpacks an unsigned integer that must span all of data.
func (b *BinaryCodec) UnmarshalFixed(data []byte, v any, order wire.ByteOrder) error {
	r := wire.NewReader(data)
	switch x := v.(type) {
	case *uint8:
		return decodeInto(x, r, r.Uint8)
	case *uint16:
		return decodeInto(x, r, ordered(order, r.Uint16, r.Uint16BE))
	case *uint32:
		return decodeInto(x, r, ordered(order, r.Uint32, r.Uint32BE))
	case *uint64:
		return decodeInto(x, r, ordered(order, r.Uint64, r.Uint64BE))
	case *uint128.Uint128:
		return decodeInto(x, r, ordered(order, r.Uint128, r.Uint128BE))
	case *uint256.Int:
		return decodeInto(x, r, ordered(order, r.Uint256, r.Uint256BE))
	default:
		return unsupported(v)
	}
}

func ordered[T any](order wire.ByteOrder, le, be func() (T, error)) func() (T, error) {
	if order == wire.BigEndian {
		return be
	}
	return le
}

// decodeInto stores the result of read in dst only when it consumed all of r.
func decodeInto[T any](dst *T, r *wire.Reader, read func() (T, error)) error {
	v, err := read()
	if err != nil {
		return err
	}
	if err := consumed(r); err != nil {
		return err
	}
	*dst = v
	return nil
}

func consumed(r *wire.Reader) error {
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", wire.ErrSizeMismatch, r.Remaining())
	}
	return nil
}

func unsupported(v any) error {
	log.Codec.Debug().Str("type", fmt.Sprintf("%T", v)).Msg("no binary encoding for type")
	return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}
