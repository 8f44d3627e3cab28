package stream

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/eigerco/serialization/pkg/log"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// DefaultMaxMessageSize bounds a frame when Options.MaxMessageSize is zero.
const DefaultMaxMessageSize = 16 << 20

// ErrMessageTooLarge is returned when a frame declares more content than the reader accepts
var ErrMessageTooLarge = errors.New("stream: message exceeds maximum size")

// Message is one frame: a varint content length followed by the content bytes.
type Message struct {
	// Size is the length of the content in bytes
	Size uint64
	// Content contains the actual message data
	Content []byte
}

// Options configures ReadMessage.
type Options struct {
	// MaxMessageSize rejects frames with larger content, default DefaultMaxMessageSize
	MaxMessageSize uint64
}

func (o Options) maxSize() uint64 {
	if o.MaxMessageSize == 0 {
		return DefaultMaxMessageSize
	}
	return o.MaxMessageSize
}

type readResult struct {
	msg *Message
	err error
}

// WriteMessage writes content to w as a single frame:
//   - varint: content size
//   - N bytes: content itself
//
// The call returns ctx.Err() as soon as ctx is cancelled. The underlying write may still be in
// flight at that point, so w should not be reused after a cancelled write.
func WriteMessage(ctx context.Context, w io.Writer, content []byte) error {
	done := make(chan error, 1)
	go func() {
		frame := wire.NewWriter()
		frame.Varint(uint64(len(content)))
		frame.Raw(content)

		if _, err := w.Write(frame.Data()); err != nil {
			done <- fmt.Errorf("failed to write message: %w", err)
			return
		}
		done <- nil
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Stream.Debug().Err(err).Int("size", len(content)).Msg("write failed")
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReadMessage reads one frame written by WriteMessage.
//
// The call returns ctx.Err() as soon as ctx is cancelled. The reading goroutine stays blocked on r
// until the underlying read returns, and may still consume bytes after that, so r must not be
// reused after a cancelled read. Close r to release the goroutine.
func ReadMessage(ctx context.Context, r io.Reader, opts Options) (*Message, error) {
	done := make(chan readResult, 1)

	go func() {
		size, err := readSize(r)
		if err != nil {
			done <- readResult{nil, fmt.Errorf("failed to read message size: %w", err)}
			return
		}
		if size > opts.maxSize() {
			done <- readResult{nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, size, opts.maxSize())}
			return
		}

		content := make([]byte, size)
		if _, err := io.ReadFull(r, content); err != nil {
			done <- readResult{nil, fmt.Errorf("failed to read message content: %w", err)}
			return
		}
		done <- readResult{&Message{Size: size, Content: content}, nil}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			log.Stream.Debug().Err(result.err).Msg("read failed")
		}
		return result.msg, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// readSize reads a varint length prefix one byte at a time so nothing past it is consumed.
func readSize(r io.Reader) (uint64, error) {
	buf := make([]byte, 0, wire.MaxVarintLen[uint64]())
	var b [1]byte
	for len(buf) < cap(buf) {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		buf = append(buf, b[0])
		if b[0] < 0x80 {
			break
		}
	}
	size, _, err := wire.DecodeVarint[uint64](buf, 0)
	return size, err
}

// WriteValue frames the wire encoding of v.
func WriteValue(ctx context.Context, w io.Writer, v wire.Encodable) error {
	return WriteMessage(ctx, w, wire.Marshal(v))
}

// ReadValue reads one frame and decodes it as a T. The frame must hold exactly one value.
func ReadValue[T any, PT wire.DecodablePtr[T]](ctx context.Context, r io.Reader, opts Options) (T, error) {
	var v T
	msg, err := ReadMessage(ctx, r, opts)
	if err != nil {
		return v, err
	}
	if err := wire.Unmarshal(msg.Content, PT(&v)); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode message: %w", err)
	}
	return v, nil
}
