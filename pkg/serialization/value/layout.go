package value

import "fmt"

// MaxSize is the largest Size a Layout may report.
const MaxSize = 64

// Layout describes a fixed-size value: its byte length and the check run after every load.
// Implementations are zero-size types used only as type parameters. Size must be in [1, MaxSize].
type Layout interface {
	Size() int
	Validate(b []byte) error
}

// NoValidation accepts every byte pattern. Embed it in a layout that has nothing to check.
type NoValidation struct{}

func (NoValidation) Validate([]byte) error { return nil }

// Bytes32 is a 32-byte layout with no validation.
type Bytes32 struct{ NoValidation }

func (Bytes32) Size() int { return 32 }

// Bytes64 is a 64-byte layout with no validation.
type Bytes64 struct{ NoValidation }

func (Bytes64) Size() int { return 64 }

// Hash32 is the default fixed-size value.
type Hash32 = Fixed[Bytes32]

func sizeOf[L Layout]() int {
	var l L
	n := l.Size()
	if n < 1 || n > MaxSize {
		panic(fmt.Sprintf("value: layout %T has size %d, want 1..%d", l, n, MaxSize))
	}
	return n
}
