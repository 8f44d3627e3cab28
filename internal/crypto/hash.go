package crypto

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/eigerco/serialization/pkg/serialization/value"
)

type Hash = value.Fixed[hashLayout]

// HashData hashes the input data using blake2b-256
func HashData(data []byte) Hash {
	hash := blake2b.Sum256(data)
	return value.MustNew[hashLayout](hash[:])
}

// KeccakData hashes the input data using Keccak-256
func KeccakData(data []byte) Hash {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return value.MustNew[hashLayout](hash.Sum(nil))
}

// HashValue hashes the wire encoding of v.
func HashValue(v interface{ MarshalBinary() ([]byte, error) }) (Hash, error) {
	b, err := v.MarshalBinary()
	if err != nil {
		return Hash{}, err
	}
	return HashData(b), nil
}
