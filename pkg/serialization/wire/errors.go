package wire

import (
	"errors"
)

var (
	// ErrInvalidHex is returned when a hex string has an odd length or contains non-hex characters
	ErrInvalidHex = errors.New("wire: invalid hex string")

	// ErrVarintTooLong is returned when a varint runs past the maximum byte count of its target width
	ErrVarintTooLong = errors.New("wire: varint exceeds maximum length")

	// ErrVarintOverflow is returned when a decoded varint does not fit the target integer width
	ErrVarintOverflow = errors.New("wire: varint value is out of range for type")

	// ErrVarintTruncated is returned when the continuation chain reaches the end of the buffer
	ErrVarintTruncated = errors.New("wire: could not decode varint")

	// ErrBufferUnderrun is returned when a read requests more bytes than remain after the cursor
	ErrBufferUnderrun = errors.New("wire: not enough data to complete request")

	// ErrSizeMismatch is returned when a value is reconstructed from a byte sequence of the wrong length
	ErrSizeMismatch = errors.New("wire: data is of the wrong size for this structure")

	// ErrNilSource is returned when a raw write is given a nil source with a non-zero length
	ErrNilSource = errors.New("wire: cannot read bytes from nil source")

	// ErrOffsetOutOfRange is returned when an offset or cursor position lies beyond the buffer
	ErrOffsetOutOfRange = errors.New("wire: offset exceeds buffer length")

	// ErrNegativeLength is returned when a read is asked for a negative number of bytes
	ErrNegativeLength = errors.New("wire: negative length")

	// ErrListTooLong is returned when a decoded element count exceeds the reader's configured limit
	ErrListTooLong = errors.New("wire: list length exceeds limit")

	ErrUnderrunDetail = "%w: need %d bytes at position %d, %d remaining"
	ErrReadingCount   = "reading element count: %w"
	ErrReadingElement = "reading element %d: %w"
	ErrReadingList    = "reading list %d: %w"
)
