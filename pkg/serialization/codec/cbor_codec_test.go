package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/serialization/pkg/serialization/value"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

type envelope struct {
	Parent value.Hash32                            `cbor:"parent" json:"parent"`
	Hashes value.List[value.Hash32, *value.Hash32] `cbor:"hashes" json:"hashes"`
	Slot   uint32                                  `cbor:"slot" json:"slot"`
}

func TestCBORRoundTrip(t *testing.T) {
	c, err := NewCBORCodec()
	require.NoError(t, err)

	h := value.MustFromHex[value.Bytes32](testHash)
	in := envelope{Parent: h, Hashes: value.NewList(h), Slot: 9}

	serialized, err := c.Marshal(in)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, c.Unmarshal(serialized, &out))
	assert.True(t, in.Parent.Equal(out.Parent))
	assert.True(t, in.Hashes.Equal(out.Hashes))
	assert.Equal(t, in.Slot, out.Slot)
}

func TestCBORDeterministic(t *testing.T) {
	c, err := NewCBORCodec()
	require.NoError(t, err)

	first, err := c.Marshal(map[string]uint64{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := c.Marshal(map[string]uint64{"c": 3, "a": 1, "b": 2})
		require.NoError(t, err)
		assert.True(t, bytes.Equal(first, again))
	}
}

func TestCBORVarint(t *testing.T) {
	c, err := NewCBORCodec()
	require.NoError(t, err)

	for _, x := range []uint64{0, 23, 24, 300, 1 << 40} {
		serialized, err := c.MarshalVarint(x)
		require.NoError(t, err)

		var v uint64
		require.NoError(t, c.UnmarshalVarint(serialized, &v))
		assert.Equal(t, x, v)
	}

	small, err := c.MarshalFixed(uint32(5), wire.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05}, small)
}

func TestJSONCodec(t *testing.T) {
	j := &JSONCodec{}

	h := value.MustFromHex[value.Bytes32](testHash)
	in := envelope{Parent: h, Hashes: value.NewList(h, h), Slot: 1}

	serialized, err := j.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(serialized), `"parent":"`+testHash+`"`)

	var out envelope
	require.NoError(t, j.Unmarshal(serialized, &out))
	assert.True(t, in.Hashes.Equal(out.Hashes))

	n, err := j.MarshalVarint(300)
	require.NoError(t, err)
	var v uint64
	require.NoError(t, j.UnmarshalVarint(n, &v))
	assert.Equal(t, uint64(300), v)
}
