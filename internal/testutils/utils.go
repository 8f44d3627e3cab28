package testutils

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigerco/serialization/internal/crypto"
	"github.com/eigerco/serialization/pkg/serialization/value"
)

func RandomBytes(t testing.TB, n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func RandomHash(t testing.TB) crypto.Hash {
	return crypto.HashData(RandomBytes(t, crypto.HashSize))
}

func RandomHash32(t testing.TB) value.Hash32 {
	h, err := value.New[value.Bytes32](RandomBytes(t, 32))
	require.NoError(t, err)
	return h
}

// RandomED25519PublicKey generates a key pair and returns its public half, so the key always
// passes the curve point check.
func RandomED25519PublicKey(t testing.TB) crypto.Ed25519PublicKey {
	pk, sk, err := crypto.GenerateKey(rand.Reader)
	require.NoError(t, err)
	sk.Wipe()
	return pk
}

func RandomEd25519Signature(t testing.TB) crypto.Ed25519Signature {
	var sig crypto.Ed25519Signature
	require.NoError(t, sig.UnmarshalBinary(RandomBytes(t, crypto.Ed25519SignatureSize)))
	return sig
}
