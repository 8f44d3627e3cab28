package wire

import (
	"fmt"
	"math/bits"
)

// Unsigned is the set of integer types the varint codec and fixed-width packer accept.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// BitWidth returns the width in bits of T.
func BitWidth[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// MaxVarintLen returns the longest varint accepted when decoding into T: ceil(W/7)+1 bytes.
func MaxVarintLen[T Unsigned]() int {
	w := BitWidth[T]()
	return (w+6)/7 + 1
}

// VarintLen returns the number of bytes EncodeVarint emits for v.
func VarintLen(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 6) / 7
}

// AppendVarint appends the varint encoding of v to buf and returns the extended buffer.
//
// Each byte carries 7 bits of the value, least significant group first. The high bit is set
// on every byte except the last. Zero encodes to a single zero byte.
func AppendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// EncodeVarint returns the minimal varint encoding of v.
func EncodeVarint[T Unsigned](v T) []byte {
	return AppendVarint(make([]byte, 0, VarintLen(uint64(v))), uint64(v))
}

// DecodeVarint decodes one varint into T starting at offset and returns the value together
// with the number of bytes consumed.
func DecodeVarint[T Unsigned](buf []byte, offset int) (T, int, error) {
	if offset < 0 || offset > len(buf) {
		return 0, 0, fmt.Errorf("%w: offset %d, length %d", ErrOffsetOutOfRange, offset, len(buf))
	}

	maxLen := MaxVarintLen[T]()

	var (
		acc   uint64
		shift uint
	)
	for i := offset; ; i++ {
		consumed := i - offset + 1
		if consumed > maxLen {
			return 0, 0, ErrVarintTooLong
		}
		if i >= len(buf) {
			return 0, 0, ErrVarintTruncated
		}

		b := buf[i]
		group := uint64(b & 0x7f)

		// groups above bit 63 can never be represented, whatever the target
		if group != 0 && (shift >= 64 || group>>(64-shift) != 0) {
			return 0, 0, ErrVarintOverflow
		}
		if shift < 64 {
			acc |= group << shift
		}

		if b < 0x80 {
			result := T(acc)
			if uint64(result) != acc {
				return 0, 0, ErrVarintOverflow
			}
			return result, consumed, nil
		}
		shift += 7
	}
}
