package store

import "errors"

// ErrNotFound is returned when no value is stored under a key
var ErrNotFound = errors.New("store: value not found")

const (
	ErrFailedBatchCommit = "failed to commit batch: %w"
)

// Prefix constants for all store types
const (
	PrefixHash byte = iota + 1
	PrefixPublicKey
	PrefixSignature
	PrefixList
)

// PrefixToString converts a prefix byte to a string
func PrefixToString(p byte) string {
	switch p {
	case PrefixHash:
		return "hash"
	case PrefixPublicKey:
		return "publicKey"
	case PrefixSignature:
		return "signature"
	case PrefixList:
		return "list"
	default:
		return "unknown"
	}
}

// makeKey creates a key from a prefix and an encoded key
func makeKey(prefix byte, key []byte) []byte {
	k := make([]byte, 1+len(key))
	k[0] = prefix
	copy(k[1:], key)
	return k
}
