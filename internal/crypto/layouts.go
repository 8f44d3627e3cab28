package crypto

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/eigerco/serialization/pkg/serialization/value"
)

var (
	// ErrInvalidPublicKey is returned when bytes do not decode to a point on the curve
	ErrInvalidPublicKey = errors.New("crypto: invalid ed25519 public key")

	// ErrNonCanonicalScalar is returned when bytes encode a scalar outside [0, l)
	ErrNonCanonicalScalar = errors.New("crypto: non-canonical scalar")
)

type hashLayout struct{ value.NoValidation }

func (hashLayout) Size() int { return HashSize }

type signatureLayout struct{ value.NoValidation }

func (signatureLayout) Size() int { return Ed25519SignatureSize }

type seedLayout struct{ value.NoValidation }

func (seedLayout) Size() int { return Ed25519SeedSize }

type publicKeyLayout struct{}

func (publicKeyLayout) Size() int { return Ed25519PublicSize }

func (publicKeyLayout) Validate(b []byte) error {
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return nil
}

type scalarLayout struct{}

func (scalarLayout) Size() int { return ScalarSize }

func (scalarLayout) Validate(b []byte) error {
	if _, err := edwards25519.NewScalar().SetCanonicalBytes(b); err != nil {
		return fmt.Errorf("%w: %v", ErrNonCanonicalScalar, err)
	}
	return nil
}
