package crypto

type ED25519PublicKeySet map[[Ed25519PublicSize]byte]struct{}

func (set ED25519PublicKeySet) Add(key Ed25519PublicKey) {
	set[[Ed25519PublicSize]byte(key.Bytes())] = struct{}{}
}

func (set ED25519PublicKeySet) Has(key Ed25519PublicKey) bool {
	_, ok := set[[Ed25519PublicSize]byte(key.Bytes())]
	return ok
}
