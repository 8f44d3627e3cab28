package crypto

const (
	HashSize             = 32
	Ed25519PublicSize    = 32
	Ed25519SeedSize      = 32
	Ed25519SignatureSize = 64
	ScalarSize           = 32
)
