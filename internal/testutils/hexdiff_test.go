package testutils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexDump(t *testing.T) {
	b := bytes.Repeat([]byte{0xab}, 18)
	assert.Equal(t,
		"00000000  abababababababababababababababab\n"+
			"00000010  abab\n",
		HexDump(b))
	assert.Equal(t, "", HexDump(nil))
}

func TestDiffHex(t *testing.T) {
	a := bytes.Repeat([]byte{0x00}, 48)
	b := bytes.Clone(a)
	b[20] = 0xff

	assert.Empty(t, DiffHex(a, a))

	diff := DiffHex(a, b)
	assert.Contains(t, diff, "--- Expected")
	assert.Contains(t, diff, "+++ Actual")
	assert.Contains(t, diff, "-00000010  00000000000000000000000000000000")
	assert.Contains(t, diff, "+00000010  00000000ff0000000000000000000000")

	RequireEqualHex(t, a, bytes.Clone(a))
}

func TestRandomValues(t *testing.T) {
	assert.False(t, RandomHash(t).Equal(RandomHash(t)))
	assert.Len(t, RandomBytes(t, 7), 7)
	assert.Equal(t, 64, RandomEd25519Signature(t).Size())
	assert.False(t, RandomED25519PublicKey(t).IsZero())
	assert.False(t, RandomHash32(t).IsZero())
}
