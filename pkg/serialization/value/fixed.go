package value

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/eigerco/serialization/pkg/serialization/wire"
)

var (
	_ wire.Value = (*Fixed[Bytes32])(nil)
	_ wire.Value = (*Fixed[Bytes64])(nil)
)

// Fixed is a byte array whose length and load validation are given by L.
//
// The zero value reads as L.Size() zero bytes. A Fixed owns its bytes: assignment copies them,
// so Set and Wipe only ever touch the receiver. Fixed values are comparable with ==.
type Fixed[L Layout] struct {
	data [MaxSize]byte
}

// New copies b into a Fixed. It fails with wire.ErrSizeMismatch when len(b) != L.Size()
// and with the layout's error when validation rejects b.
func New[L Layout](b []byte) (Fixed[L], error) {
	var f Fixed[L]
	if err := f.UnmarshalBinary(b); err != nil {
		return Fixed[L]{}, err
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew[L Layout](b []byte) Fixed[L] {
	f, err := New[L](b)
	if err != nil {
		panic(err)
	}
	return f
}

// FromHex decodes s into a Fixed.
func FromHex[L Layout](s string) (Fixed[L], error) {
	var f Fixed[L]
	if err := f.SetHex(s); err != nil {
		return Fixed[L]{}, err
	}
	return f, nil
}

// MustFromHex is like FromHex but panics on error. Intended for constants and tests.
func MustFromHex[L Layout](s string) Fixed[L] {
	f, err := FromHex[L](s)
	if err != nil {
		panic(err)
	}
	return f
}

// load validates b and copies it in. The receiver is untouched on error.
func (f *Fixed[L]) load(b []byte) error {
	var l L
	n := sizeOf[L]()
	if len(b) != n {
		return fmt.Errorf("%w: expected %d bytes, got %d", wire.ErrSizeMismatch, n, len(b))
	}
	if err := l.Validate(b); err != nil {
		return err
	}
	copy(f.data[:], b)
	return nil
}

// raw views the receiver's storage. Callers must not retain it past the receiver.
func (f *Fixed[L]) raw() []byte {
	return f.data[:sizeOf[L]()]
}

func (f Fixed[L]) Size() int {
	return sizeOf[L]()
}

// Bytes returns a copy of the value.
func (f Fixed[L]) Bytes() []byte {
	return bytes.Clone(f.raw())
}

// Clone returns a copy of f. It is the same as assignment.
func (f Fixed[L]) Clone() Fixed[L] {
	return f
}

func (f Fixed[L]) Encode(w *wire.Writer) {
	w.Raw(f.raw())
}

// Decode reads exactly Size() bytes. The reader's cursor only advances when the bytes load.
func (f *Fixed[L]) Decode(r *wire.Reader) error {
	n := sizeOf[L]()
	b, err := r.Peek().Bytes(n)
	if err != nil {
		return err
	}
	if err := f.load(b); err != nil {
		return err
	}
	return r.Skip(n)
}

func (f Fixed[L]) MarshalBinary() ([]byte, error) {
	return f.Bytes(), nil
}

func (f *Fixed[L]) UnmarshalBinary(b []byte) error {
	return f.load(b)
}

// SetHex loads the value from a hex string.
func (f *Fixed[L]) SetHex(s string) error {
	b, err := wire.FromHex(s)
	if err != nil {
		return err
	}
	return f.load(b)
}

func (f Fixed[L]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fixed[L]) UnmarshalText(text []byte) error {
	return f.SetHex(string(text))
}

// MarshalJSON renders the value as a hex string.
func (f Fixed[L]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Fixed[L]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected hex string: %v", ErrJSONType, err)
	}
	return f.SetHex(s)
}

// MarshalCBOR renders the value as a CBOR byte string.
func (f Fixed[L]) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(f.raw())
}

func (f *Fixed[L]) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := decMode.Unmarshal(data, &b); err != nil {
		return err
	}
	return f.load(b)
}

// String returns the value as lowercase hex.
func (f Fixed[L]) String() string {
	return wire.ToHex(f.raw())
}

func (f Fixed[L]) Equal(other Fixed[L]) bool {
	return bytes.Equal(f.raw(), other.raw())
}

// Compare orders values by treating the last byte as the most significant.
// It returns -1, 0 or +1.
func (f Fixed[L]) Compare(other Fixed[L]) int {
	a, b := f.raw(), other.raw()
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func (f Fixed[L]) Less(other Fixed[L]) bool {
	return f.Compare(other) < 0
}

// IsZero reports whether every byte is zero.
func (f Fixed[L]) IsZero() bool {
	for _, b := range f.raw() {
		if b != 0 {
			return false
		}
	}
	return true
}

// At returns byte i. It panics when i is out of range.
func (f Fixed[L]) At(i int) byte {
	return f.raw()[i]
}

// Set overwrites byte i of the receiver without running validation. It panics when i is out
// of range.
func (f *Fixed[L]) Set(i int, b byte) {
	f.raw()[i] = b
}

// Wipe overwrites the receiver's bytes with zeros in place. Other copies keep their bytes.
func (f *Fixed[L]) Wipe() {
	clear(f.data[:])
}
