package wire

import (
	"fmt"
	"math"
	"slices"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// ByteOrder selects how fixed-width integers are laid out on the wire.
type ByteOrder uint8

const (
	// LittleEndian puts the least significant byte first. It is the default.
	LittleEndian ByteOrder = iota
	// BigEndian puts the most significant byte first.
	BigEndian
)

const (
	Uint128Size = 16
	Uint256Size = 32
)

// Pack serializes x into exactly BitWidth[T]()/8 bytes in the given byte order.
func Pack[T Unsigned](x T, order ByteOrder) []byte {
	l := BitWidth[T]() / 8
	out := make([]byte, l)
	for i := 0; i < l; i++ {
		out[i] = byte((x >> (8 * i)) & T(math.MaxUint8))
	}
	if order == BigEndian {
		slices.Reverse(out)
	}
	return out
}

// Unpack reads a T from buf at offset. It fails with ErrBufferUnderrun when fewer than
// BitWidth[T]()/8 bytes are available.
func Unpack[T Unsigned](buf []byte, offset int, order ByteOrder) (T, error) {
	l := BitWidth[T]() / 8
	raw, err := window(buf, offset, l)
	if err != nil {
		return 0, err
	}

	var u T
	for i := 0; i < l; i++ {
		b := raw[i]
		if order == BigEndian {
			b = raw[l-1-i]
		}
		u |= T(b) << (8 * i)
	}
	return u, nil
}

// PackUint128 serializes a 128-bit value into 16 bytes.
func PackUint128(x uint128.Uint128, order ByteOrder) []byte {
	out := make([]byte, Uint128Size)
	if order == BigEndian {
		x.PutBytesBE(out)
	} else {
		x.PutBytes(out)
	}
	return out
}

// UnpackUint128 reads a 128-bit value from buf at offset.
func UnpackUint128(buf []byte, offset int, order ByteOrder) (uint128.Uint128, error) {
	raw, err := window(buf, offset, Uint128Size)
	if err != nil {
		return uint128.Zero, err
	}
	if order == BigEndian {
		return uint128.FromBytesBE(raw), nil
	}
	return uint128.FromBytes(raw), nil
}

// PackUint256 serializes a 256-bit value into 32 bytes.
func PackUint256(x uint256.Int, order ByteOrder) []byte {
	be := x.Bytes32()
	out := be[:]
	if order == LittleEndian {
		slices.Reverse(out)
	}
	return out
}

// UnpackUint256 reads a 256-bit value from buf at offset.
func UnpackUint256(buf []byte, offset int, order ByteOrder) (uint256.Int, error) {
	raw, err := window(buf, offset, Uint256Size)
	if err != nil {
		return uint256.Int{}, err
	}
	be := slices.Clone(raw)
	if order == LittleEndian {
		slices.Reverse(be)
	}
	var v uint256.Int
	v.SetBytes32(be)
	return v, nil
}

// window returns buf[offset:offset+n] or ErrBufferUnderrun.
func window(buf []byte, offset, n int) ([]byte, error) {
	if offset < 0 || offset > len(buf) {
		return nil, fmt.Errorf("%w: offset %d, length %d", ErrOffsetOutOfRange, offset, len(buf))
	}
	if n > len(buf)-offset {
		return nil, fmt.Errorf(ErrUnderrunDetail, ErrBufferUnderrun, n, offset, len(buf)-offset)
	}
	return buf[offset : offset+n], nil
}
