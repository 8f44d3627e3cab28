package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// Element constrains PT to a pointer to T that implements the wire contract.
type Element[T any] interface {
	*T
	wire.Encodable
	wire.Decodable
}

// List is an ordered sequence of values of one type. On the wire it is a varint element count
// followed by each element's encoding.
type List[T any, PT Element[T]] struct {
	items []T
}

var _ wire.Value = (*List[Hash32, *Hash32])(nil)

// NewList returns a list holding items in order.
func NewList[T any, PT Element[T]](items ...T) List[T, PT] {
	return List[T, PT]{items: slices.Clone(items)}
}

// ListFromHex decodes the hex rendering of an encoded list.
func ListFromHex[T any, PT Element[T]](s string) (List[T, PT], error) {
	var l List[T, PT]
	if err := l.SetHex(s); err != nil {
		return List[T, PT]{}, err
	}
	return l, nil
}

func (l *List[T, PT]) Append(v T) {
	l.items = append(l.items, v)
}

func (l *List[T, PT]) Extend(vs ...T) {
	l.items = append(l.items, vs...)
}

func (l *List[T, PT]) ExtendList(other List[T, PT]) {
	l.items = append(l.items, other.items...)
}

// At returns element i. It panics when i is out of range.
func (l List[T, PT]) At(i int) T {
	return l.items[i]
}

// Set replaces element i. It panics when i is out of range.
func (l *List[T, PT]) Set(i int, v T) {
	l.items[i] = v
}

// Last returns the final element, or false when the list is empty.
func (l List[T, PT]) Last() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

func (l List[T, PT]) Len() int {
	return len(l.items)
}

// Items returns a shallow copy of the elements.
func (l List[T, PT]) Items() []T {
	return slices.Clone(l.items)
}

// Equal reports whether both lists hold the same number of elements with equal encodings.
func (l List[T, PT]) Equal(other List[T, PT]) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !bytes.Equal(wire.Marshal(PT(&l.items[i])), wire.Marshal(PT(&other.items[i]))) {
			return false
		}
	}
	return true
}

// Size returns the encoded length in bytes, count prefix included.
func (l List[T, PT]) Size() int {
	n := wire.VarintLen(uint64(len(l.items)))
	for i := range l.items {
		n += PT(&l.items[i]).Size()
	}
	return n
}

func (l List[T, PT]) Encode(w *wire.Writer) {
	w.Varint(uint64(len(l.items)))
	for i := range l.items {
		PT(&l.items[i]).Encode(w)
	}
}

// Decode replaces the contents with a list read from r.
func (l *List[T, PT]) Decode(r *wire.Reader) error {
	items, err := wire.ReadValues[T, PT](r)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

func (l List[T, PT]) MarshalBinary() ([]byte, error) {
	return wire.Marshal(l), nil
}

// UnmarshalBinary fails with wire.ErrSizeMismatch when data holds bytes past the list.
func (l *List[T, PT]) UnmarshalBinary(data []byte) error {
	return wire.Unmarshal(data, l)
}

// SetHex replaces the contents with the list encoded in s.
func (l *List[T, PT]) SetHex(s string) error {
	b, err := wire.FromHex(s)
	if err != nil {
		return err
	}
	return l.UnmarshalBinary(b)
}

// String returns the hex rendering of the encoded list.
func (l List[T, PT]) String() string {
	return wire.ToHex(wire.Marshal(l))
}

// MarshalJSON renders the list as a JSON array of its elements. An empty list is [].
func (l List[T, PT]) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range l.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		b, err := json.Marshal(PT(&l.items[i]))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		sb.Write(b)
	}
	sb.WriteByte(']')
	return []byte(sb.String()), nil
}

func (l *List[T, PT]) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("%w: expected array: %v", ErrJSONType, err)
	}
	items := make([]T, len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, PT(&items[i])); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	l.items = items
	return nil
}

// MarshalCBOR renders the list as a CBOR array of its elements.
func (l List[T, PT]) MarshalCBOR() ([]byte, error) {
	raws := make([]cbor.RawMessage, len(l.items))
	for i := range l.items {
		b, err := encMode.Marshal(PT(&l.items[i]))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		raws[i] = b
	}
	return encMode.Marshal(raws)
}

func (l *List[T, PT]) UnmarshalCBOR(data []byte) error {
	var raws []cbor.RawMessage
	if err := decMode.Unmarshal(data, &raws); err != nil {
		return err
	}
	items := make([]T, len(raws))
	for i, raw := range raws {
		if err := decMode.Unmarshal(raw, PT(&items[i])); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	l.items = items
	return nil
}
