package crypto

import (
	"crypto/ed25519"
	"io"

	"github.com/hdevalence/ed25519consensus"

	"github.com/eigerco/serialization/pkg/serialization/value"
)

// Ed25519PublicKey only loads from bytes that decode to a curve point.
type Ed25519PublicKey = value.Fixed[publicKeyLayout]

type Ed25519Signature = value.Fixed[signatureLayout]

// Scalar only loads from canonical encodings, little-endian and below the group order.
type Scalar = value.Fixed[scalarLayout]

// SecretKey holds an ed25519 seed. Call Wipe once the key is no longer needed.
type SecretKey = value.Fixed[seedLayout]

// GenerateKey creates a key pair from rand.
func GenerateKey(rand io.Reader) (Ed25519PublicKey, SecretKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return Ed25519PublicKey{}, SecretKey{}, err
	}
	defer clear(priv)

	pk, err := value.New[publicKeyLayout](pub)
	if err != nil {
		return Ed25519PublicKey{}, SecretKey{}, err
	}
	return pk, value.MustNew[seedLayout](priv.Seed()), nil
}

// PublicKey derives the public key of sk. sk is taken by pointer so no unwiped copy of the seed is made.
func PublicKey(sk *SecretKey) Ed25519PublicKey {
	seed := sk.Bytes()
	defer clear(seed)
	priv := ed25519.NewKeyFromSeed(seed)
	defer clear(priv)
	return value.MustNew[publicKeyLayout](priv.Public().(ed25519.PublicKey))
}

// Sign uses the standard library's signing function.
func Sign(sk *SecretKey, message []byte) Ed25519Signature {
	seed := sk.Bytes()
	defer clear(seed)
	priv := ed25519.NewKeyFromSeed(seed)
	defer clear(priv)
	return value.MustNew[signatureLayout](ed25519.Sign(priv, message))
}

// Verify uses the hdevalence/ed25519consensus library for
// ZIP-215 compliant verification.
func Verify(pk Ed25519PublicKey, message []byte, sig Ed25519Signature) bool {
	return ed25519consensus.Verify(pk.Bytes(), message, sig.Bytes())
}
