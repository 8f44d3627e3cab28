package wire

import (
	"fmt"
	"slices"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Writer is an append-only byte sink. Values are emitted in call order and must be read back
// by a Reader in the same order.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterFrom returns a Writer pre-seeded with a copy of b.
func NewWriterFrom(b []byte) *Writer {
	return &Writer{buf: slices.Clone(b)}
}

// Clone returns an independent copy of the writer.
func (w *Writer) Clone() *Writer {
	return NewWriterFrom(w.buf)
}

// Bool appends 1 for true and 0 for false.
func (w *Writer) Bool(b bool) {
	if b {
		w.buf = append(w.buf, 0x01)
		return
	}
	w.buf = append(w.buf, 0x00)
}

func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) Uint16(v uint16)   { w.buf = append(w.buf, Pack(v, LittleEndian)...) }
func (w *Writer) Uint16BE(v uint16) { w.buf = append(w.buf, Pack(v, BigEndian)...) }
func (w *Writer) Uint32(v uint32)   { w.buf = append(w.buf, Pack(v, LittleEndian)...) }
func (w *Writer) Uint32BE(v uint32) { w.buf = append(w.buf, Pack(v, BigEndian)...) }
func (w *Writer) Uint64(v uint64)   { w.buf = append(w.buf, Pack(v, LittleEndian)...) }
func (w *Writer) Uint64BE(v uint64) { w.buf = append(w.buf, Pack(v, BigEndian)...) }

func (w *Writer) Uint128(v uint128.Uint128) {
	w.buf = append(w.buf, PackUint128(v, LittleEndian)...)
}

func (w *Writer) Uint128BE(v uint128.Uint128) {
	w.buf = append(w.buf, PackUint128(v, BigEndian)...)
}

func (w *Writer) Uint256(v uint256.Int) {
	w.buf = append(w.buf, PackUint256(v, LittleEndian)...)
}

func (w *Writer) Uint256BE(v uint256.Int) {
	w.buf = append(w.buf, PackUint256(v, BigEndian)...)
}

// Raw appends b verbatim, without a length prefix.
func (w *Writer) Raw(b []byte) {
	w.buf = append(w.buf, b...)
}

// RawN appends the first n bytes of src. A nil src with a non-zero n fails with ErrNilSource.
func (w *Writer) RawN(src []byte, n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if src == nil && n > 0 {
		return ErrNilSource
	}
	if n > len(src) {
		return fmt.Errorf(ErrUnderrunDetail, ErrBufferUnderrun, n, 0, len(src))
	}
	w.buf = append(w.buf, src[:n]...)
	return nil
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Hex decodes s and appends the resulting bytes. Nothing is appended when s is malformed.
func (w *Writer) Hex(s string) error {
	b, err := FromHex(s)
	if err != nil {
		return err
	}
	w.buf = append(w.buf, b...)
	return nil
}

// Varint appends the varint encoding of v.
func (w *Writer) Varint(v uint64) {
	w.buf = AppendVarint(w.buf, v)
}

// Value appends the value's own encoding.
func (w *Writer) Value(v Encodable) {
	v.Encode(w)
}

// Reset clears the buffer. The writer stays usable.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns a copy of the buffer.
func (w *Writer) Bytes() []byte {
	return slices.Clone(w.buf)
}

// Data returns the underlying buffer without copying. It is only valid until the next write.
func (w *Writer) Data() []byte {
	return w.buf
}

// String returns the buffer as lowercase hex.
func (w *Writer) String() string {
	return ToHex(w.buf)
}

// At returns the byte at index i. It panics when i is out of range.
func (w *Writer) At(i int) byte {
	w.checkIndex(i)
	return w.buf[i]
}

// Set overwrites the byte at index i. It panics when i is out of range.
func (w *Writer) Set(i int, b byte) {
	w.checkIndex(i)
	w.buf[i] = b
}

func (w *Writer) checkIndex(i int) {
	if i < 0 || i >= len(w.buf) {
		panic(fmt.Sprintf("wire: writer index %d out of range [0:%d]", i, len(w.buf)))
	}
}

// WriteVarints appends a varint count followed by the varint encoding of each element.
func WriteVarints[T Unsigned](w *Writer, values []T) {
	w.Varint(uint64(len(values)))
	for _, v := range values {
		w.Varint(uint64(v))
	}
}

// WriteValues appends a varint count followed by each element's encoding.
func WriteValues[T Encodable](w *Writer, values []T) {
	w.Varint(uint64(len(values)))
	for _, v := range values {
		v.Encode(w)
	}
}

// WriteValuesNested appends an outer varint count, then for every inner list its varint
// count followed by its elements.
func WriteValuesNested[T Encodable](w *Writer, values [][]T) {
	w.Varint(uint64(len(values)))
	for _, inner := range values {
		WriteValues(w, inner)
	}
}
