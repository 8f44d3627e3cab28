package wire

import (
	"encoding/hex"
	"fmt"
)

// ToHex renders b as lowercase hex, two characters per byte, with no prefix.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string. Odd lengths and non-hex characters fail with ErrInvalidHex.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}
