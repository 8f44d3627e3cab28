package stream

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/serialization/pkg/serialization/value"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

func TestWriteReadMessage(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	require.NoError(t, WriteMessage(ctx, &buf, []byte("hello")))
	require.NoError(t, WriteMessage(ctx, &buf, nil))
	require.NoError(t, WriteMessage(ctx, &buf, bytes.Repeat([]byte{0xaa}, 200)))

	assert.Equal(t, byte(5), buf.Bytes()[0])

	msg, err := ReadMessage(ctx, &buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), msg.Size)
	assert.Equal(t, []byte("hello"), msg.Content)

	msg, err = ReadMessage(ctx, &buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), msg.Size)
	assert.Empty(t, msg.Content)

	msg, err = ReadMessage(ctx, &buf, Options{})
	require.NoError(t, err)
	assert.Len(t, msg.Content, 200)

	_, err = ReadMessage(ctx, &buf, Options{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMessageTooLarge(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(ctx, &buf, make([]byte, 11)))

	_, err := ReadMessage(ctx, &buf, Options{MaxMessageSize: 10})
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestReadMessageTruncated(t *testing.T) {
	ctx := context.Background()

	_, err := ReadMessage(ctx, bytes.NewReader([]byte{0x05, 'a', 'b'}), Options{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadMessage(ctx, bytes.NewReader([]byte{0x80}), Options{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadMessageBadPrefix(t *testing.T) {
	prefix := bytes.Repeat([]byte{0x80}, 11)
	_, err := ReadMessage(context.Background(), bytes.NewReader(prefix), Options{})
	assert.ErrorIs(t, err, wire.ErrVarintTooLong)
}

func TestReadMessageCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ReadMessage(ctx, pr, Options{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCancelledReadKeepsConsumingReader(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pr.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadMessage(ctx, pr, Options{})
	require.ErrorIs(t, err, context.Canceled)

	// The abandoned read still takes the next frame off the pipe.
	written := make(chan error, 1)
	go func() { written <- WriteMessage(context.Background(), pw, []byte("lost")) }()
	select {
	case err := <-written:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("frame was not consumed")
	}
}

func TestWriteMessageCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pr.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteMessage(ctx, pw, []byte("never read"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteReadValue(t *testing.T) {
	ctx := context.Background()
	h := value.MustFromHex[value.Bytes32]("974506601a60dc465e6e9acddb563889e63471849ec4198656550354b8541fcb")
	var buf bytes.Buffer

	require.NoError(t, WriteValue(ctx, &buf, value.NewList(h, h)))
	assert.Equal(t, 66, buf.Len())

	got, err := ReadValue[value.List[value.Hash32, *value.Hash32]](ctx, &buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.At(1).Equal(h))
}

func TestReadValueRejectsTrailingBytes(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(ctx, &buf, make([]byte, 33)))

	_, err := ReadValue[value.Hash32](ctx, &buf, Options{})
	assert.ErrorIs(t, err, wire.ErrSizeMismatch)
}
