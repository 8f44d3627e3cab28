package wire

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestPackUint32ByteOrder(t *testing.T) {
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, Pack[uint32](0x12345678, LittleEndian))
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, Pack[uint32](0x12345678, BigEndian))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		for _, v := range []uint8{0, 0x5a, math.MaxUint8} {
			got, err := Unpack[uint8](Pack(v, order), 0, order)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		for _, v := range []uint16{0, 0x1234, math.MaxUint16} {
			got, err := Unpack[uint16](Pack(v, order), 0, order)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		for _, v := range []uint32{0, 0x12345678, math.MaxUint32} {
			got, err := Unpack[uint32](Pack(v, order), 0, order)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		for _, v := range []uint64{0, 0x0102030405060708, math.MaxUint64} {
			got, err := Unpack[uint64](Pack(v, order), 0, order)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}

func TestUnpackAtOffset(t *testing.T) {
	buf := []byte{0xff, 0x01, 0x00, 0xff}

	v, err := Unpack[uint16](buf, 1, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), v)

	v, err = Unpack[uint16](buf, 1, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0100), v)
}

func TestUnpackUnderrun(t *testing.T) {
	_, err := Unpack[uint32]([]byte{1, 2, 3}, 0, LittleEndian)
	assert.ErrorIs(t, err, ErrBufferUnderrun)

	_, err = Unpack[uint64](make([]byte, 10), 4, BigEndian)
	assert.ErrorIs(t, err, ErrBufferUnderrun)

	_, err = Unpack[uint8](nil, 1, LittleEndian)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestPackUint128(t *testing.T) {
	one := uint128.From64(1)

	le := PackUint128(one, LittleEndian)
	be := PackUint128(one, BigEndian)
	require.Len(t, le, Uint128Size)
	assert.Equal(t, byte(1), le[0])
	assert.Equal(t, byte(1), be[Uint128Size-1])

	for _, v := range []uint128.Uint128{uint128.Zero, uint128.New(0xdeadbeef, 0x01), uint128.Max} {
		for _, order := range []ByteOrder{LittleEndian, BigEndian} {
			got, err := UnpackUint128(PackUint128(v, order), 0, order)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}

	_, err := UnpackUint128(make([]byte, 15), 0, LittleEndian)
	assert.ErrorIs(t, err, ErrBufferUnderrun)
}

func TestPackUint256(t *testing.T) {
	one := *uint256.NewInt(1)

	le := PackUint256(one, LittleEndian)
	be := PackUint256(one, BigEndian)
	require.Len(t, le, Uint256Size)
	assert.Equal(t, byte(1), le[0])
	assert.Equal(t, byte(1), be[Uint256Size-1])

	maxVal := uint256.Int{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}
	mid := *uint256.NewInt(0).Lsh(uint256.NewInt(0xabcdef), 130)
	for _, v := range []uint256.Int{{}, mid, maxVal} {
		for _, order := range []ByteOrder{LittleEndian, BigEndian} {
			got, err := UnpackUint256(PackUint256(v, order), 0, order)
			require.NoError(t, err)
			assert.True(t, v.Eq(&got))
		}
	}

	_, err := UnpackUint256(make([]byte, 31), 0, BigEndian)
	assert.ErrorIs(t, err, ErrBufferUnderrun)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "00ff10", ToHex([]byte{0x00, 0xff, 0x10}))
	assert.Equal(t, "", ToHex(nil))

	b, err := FromHex("00FF10")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, b)

	_, err = FromHex("abc")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = FromHex("zz")
	assert.ErrorIs(t, err, ErrInvalidHex)
}
