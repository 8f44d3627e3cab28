package codec

import (
	"errors"

	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// ErrUnsupportedType is returned when a codec has no encoding for the given Go type
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Codec converts values to and from one serialization format.
type Codec interface {
	Marshal(v any) ([]byte, error)
	MarshalVarint(x uint64) ([]byte, error)
	MarshalFixed(x any, order wire.ByteOrder) ([]byte, error)
	Unmarshal(data []byte, v any) error
	UnmarshalVarint(data []byte, v *uint64) error
	UnmarshalFixed(data []byte, v any, order wire.ByteOrder) error
}
