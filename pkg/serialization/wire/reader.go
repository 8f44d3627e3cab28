package wire

import (
	"fmt"
	"slices"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Reader decodes values from a byte buffer using a cursor. Every successful read advances the
// cursor by exactly the bytes it consumed. To read without advancing, read from Peek().
//
// The buffer is never modified after construction. A Reader is not safe for concurrent use.
type Reader struct {
	buf      []byte
	offset   int
	maxCount uint64
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxListLength rejects any decoded element count above n with ErrListTooLong.
// Zero means unbounded.
func WithMaxListLength(n uint64) ReaderOption {
	return func(r *Reader) {
		r.maxCount = n
	}
}

// NewReader returns a Reader over a copy of b with the cursor at 0.
func NewReader(b []byte, opts ...ReaderOption) *Reader {
	r := &Reader{buf: slices.Clone(b)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewReaderFromWriter returns a Reader over a copy of the writer's current contents.
func NewReaderFromWriter(w *Writer, opts ...ReaderOption) *Reader {
	return NewReader(w.buf, opts...)
}

// NewReaderFromHex decodes s and returns a Reader over the result.
func NewReaderFromHex(s string, opts ...ReaderOption) (*Reader, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	r := NewReader(nil, opts...)
	r.buf = b
	return r, nil
}

// Clone returns a Reader with an independent copy of the buffer and the same cursor.
func (r *Reader) Clone() *Reader {
	return &Reader{buf: slices.Clone(r.buf), offset: r.offset, maxCount: r.maxCount}
}

// Peek returns a view that starts at the current cursor. Reads on the view advance only the
// view's cursor, so any operation, including composite list reads, leaves r untouched.
func (r *Reader) Peek() *Reader {
	return &Reader{buf: r.buf, offset: r.offset, maxCount: r.maxCount}
}

// take returns the next n bytes and advances the cursor.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b, err := window(r.buf, r.offset, n)
	if err != nil {
		return nil, err
	}
	r.offset += n
	return b, nil
}

// Bool reads one byte. Only exactly 0x01 is true.
func (r *Reader) Bool() (bool, error) {
	b, err := r.Uint8()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *Reader) Uint8() (uint8, error) {
	return readFixed[uint8](r, LittleEndian)
}

func (r *Reader) Uint16() (uint16, error)   { return readFixed[uint16](r, LittleEndian) }
func (r *Reader) Uint16BE() (uint16, error) { return readFixed[uint16](r, BigEndian) }
func (r *Reader) Uint32() (uint32, error)   { return readFixed[uint32](r, LittleEndian) }
func (r *Reader) Uint32BE() (uint32, error) { return readFixed[uint32](r, BigEndian) }
func (r *Reader) Uint64() (uint64, error)   { return readFixed[uint64](r, LittleEndian) }
func (r *Reader) Uint64BE() (uint64, error) { return readFixed[uint64](r, BigEndian) }

func (r *Reader) Uint128() (uint128.Uint128, error)   { return r.uint128(LittleEndian) }
func (r *Reader) Uint128BE() (uint128.Uint128, error) { return r.uint128(BigEndian) }
func (r *Reader) Uint256() (uint256.Int, error)       { return r.uint256(LittleEndian) }
func (r *Reader) Uint256BE() (uint256.Int, error)     { return r.uint256(BigEndian) }

func (r *Reader) uint128(order ByteOrder) (uint128.Uint128, error) {
	v, err := UnpackUint128(r.buf, r.offset, order)
	if err != nil {
		return uint128.Zero, err
	}
	r.offset += Uint128Size
	return v, nil
}

func (r *Reader) uint256(order ByteOrder) (uint256.Int, error) {
	v, err := UnpackUint256(r.buf, r.offset, order)
	if err != nil {
		return uint256.Int{}, err
	}
	r.offset += Uint256Size
	return v, nil
}

func readFixed[T Unsigned](r *Reader, order ByteOrder) (T, error) {
	v, err := Unpack[T](r.buf, r.offset, order)
	if err != nil {
		return 0, err
	}
	r.offset += BitWidth[T]() / 8
	return v, nil
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return slices.Clone(b), nil
}

// Hex reads n bytes and renders them as lowercase hex.
func (r *Reader) Hex(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	return ToHex(b), nil
}

// Varint decodes one varint as a uint64.
func (r *Reader) Varint() (uint64, error) {
	return ReadVarint[uint64](r)
}

// Value decodes v in place from the cursor.
func (r *Reader) Value(v Decodable) error {
	start := r.offset
	if err := v.Decode(r); err != nil {
		r.offset = start
		return err
	}
	return nil
}

// Reset moves the cursor to pos. Positions past the end of the buffer are rejected.
func (r *Reader) Reset(pos int) error {
	if pos < 0 || pos > len(r.buf) {
		return fmt.Errorf("%w: position %d, length %d", ErrOffsetOutOfRange, pos, len(r.buf))
	}
	r.offset = pos
	return nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// Compact drops the bytes already consumed and moves the cursor back to 0.
func (r *Reader) Compact() {
	r.buf = slices.Clone(r.buf[r.offset:])
	r.offset = 0
}

// Len returns the total buffer length.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Position returns the cursor.
func (r *Reader) Position() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Unread returns a copy of the bytes after the cursor.
func (r *Reader) Unread() []byte {
	return slices.Clone(r.buf[r.offset:])
}

// Data returns the underlying buffer without copying. Callers must not modify it.
func (r *Reader) Data() []byte {
	return r.buf
}

// String returns the whole buffer, read or not, as lowercase hex.
func (r *Reader) String() string {
	return ToHex(r.buf)
}

// count reads a list length and applies the configured limit.
func (r *Reader) count() (uint64, error) {
	n, err := ReadVarint[uint64](r)
	if err != nil {
		return 0, fmt.Errorf(ErrReadingCount, err)
	}
	if r.maxCount > 0 && n > r.maxCount {
		return 0, fmt.Errorf("%w: %d > %d", ErrListTooLong, n, r.maxCount)
	}
	return n, nil
}

// capacity bounds a pre-allocation by the bytes left, since every element takes at least one.
func (r *Reader) capacity(n uint64) int {
	if rem := uint64(r.Remaining()); n > rem {
		return int(rem)
	}
	return int(n)
}

// ReadVarint decodes one varint into T.
func ReadVarint[T Unsigned](r *Reader) (T, error) {
	v, n, err := DecodeVarint[T](r.buf, r.offset)
	if err != nil {
		return 0, fmt.Errorf("%w at position %d", err, r.offset)
	}
	r.offset += n
	return v, nil
}

// ReadVarints reads a varint count followed by that many varints. On failure the cursor is
// restored to where the call started.
func ReadVarints[T Unsigned](r *Reader) (values []T, err error) {
	start := r.offset
	defer func() {
		if err != nil {
			r.offset = start
		}
	}()

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	values = make([]T, 0, r.capacity(n))
	for i := uint64(0); i < n; i++ {
		v, err := ReadVarint[T](r)
		if err != nil {
			return nil, fmt.Errorf(ErrReadingElement, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadValue constructs a zero T and decodes it from the cursor.
func ReadValue[T any, PT DecodablePtr[T]](r *Reader) (T, error) {
	var v T
	if err := r.Value(PT(&v)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadValues reads a varint count followed by that many values. On failure the cursor is
// restored to where the call started.
func ReadValues[T any, PT DecodablePtr[T]](r *Reader) (values []T, err error) {
	start := r.offset
	defer func() {
		if err != nil {
			r.offset = start
		}
	}()

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	values = make([]T, 0, r.capacity(n))
	for i := uint64(0); i < n; i++ {
		v, err := ReadValue[T, PT](r)
		if err != nil {
			return nil, fmt.Errorf(ErrReadingElement, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadValuesNested mirrors WriteValuesNested. On failure the cursor is restored to where the
// call started.
func ReadValuesNested[T any, PT DecodablePtr[T]](r *Reader) (values [][]T, err error) {
	start := r.offset
	defer func() {
		if err != nil {
			r.offset = start
		}
	}()

	n, err := r.count()
	if err != nil {
		return nil, err
	}
	values = make([][]T, 0, r.capacity(n))
	for i := uint64(0); i < n; i++ {
		inner, err := ReadValues[T, PT](r)
		if err != nil {
			return nil, fmt.Errorf(ErrReadingList, i, err)
		}
		values = append(values, inner)
	}
	return values, nil
}
