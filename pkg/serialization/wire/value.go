package wire

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Encodable is implemented by types that write their own wire encoding.
type Encodable interface {
	// Size returns the number of bytes Encode emits.
	Size() int
	Encode(w *Writer)
}

// Decodable is implemented by types that reconstruct themselves from a Reader.
type Decodable interface {
	Decode(r *Reader) error
}

// Value is the full contract a domain type implements to take part in the wire format,
// the raw byte form and the JSON form.
type Value interface {
	Encodable
	Decodable
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	json.Marshaler
	json.Unmarshaler
	fmt.Stringer
}

// DecodablePtr constrains PT to be a pointer to T that can decode into T.
type DecodablePtr[T any] interface {
	*T
	Decodable
}

// Marshal encodes v into a fresh byte slice.
func Marshal(v Encodable) []byte {
	w := &Writer{buf: make([]byte, 0, v.Size())}
	v.Encode(w)
	return w.buf
}

// Unmarshal decodes v from data and fails with ErrSizeMismatch when bytes are left over.
func Unmarshal(data []byte, v Decodable) error {
	r := &Reader{buf: data}
	if err := v.Decode(r); err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrSizeMismatch, r.Remaining())
	}
	return nil
}
