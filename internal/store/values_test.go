package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/serialization/internal/crypto"
	"github.com/eigerco/serialization/internal/testutils"
	"github.com/eigerco/serialization/pkg/db/pebble"
	"github.com/eigerco/serialization/pkg/serialization/value"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

type hashList = value.List[crypto.Hash, *crypto.Hash]

func newKVStore(t *testing.T) *pebble.KVStore {
	kv, err := pebble.NewKVStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})
	return kv
}

func TestValuesPutGet(t *testing.T) {
	s := NewValues[crypto.Hash, crypto.Ed25519PublicKey](newKVStore(t), PrefixPublicKey)

	key := testutils.RandomHash(t)
	pk := testutils.RandomED25519PublicKey(t)

	require.NoError(t, s.Put(key, pk))

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.True(t, pk.Equal(got))

	ok, err := s.Has(key)
	require.NoError(t, err)
	assert.True(t, ok)

	raw, err := s.KVStore.Get(makeKey(PrefixPublicKey, key.Bytes()))
	require.NoError(t, err)
	testutils.RequireEqualHex(t, pk.Bytes(), raw)
}

func TestValuesNotFound(t *testing.T) {
	s := NewValues[crypto.Hash, hashList](newKVStore(t), PrefixList)

	_, err := s.Get(testutils.RandomHash(t))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, pebble.ErrNotFound)

	ok, err := s.Has(testutils.RandomHash(t))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValuesDelete(t *testing.T) {
	s := NewValues[crypto.Hash, hashList](newKVStore(t), PrefixList)
	key := testutils.RandomHash(t)

	require.NoError(t, s.Put(key, value.NewList(testutils.RandomHash(t))))
	require.NoError(t, s.Delete(key))

	_, err := s.Get(key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValuesListRoundTrip(t *testing.T) {
	s := NewValues[crypto.Hash, hashList](newKVStore(t), PrefixList)

	h := testutils.RandomHash(t)
	l := value.NewList(h, h, testutils.RandomHash(t))
	key := crypto.HashData([]byte("list"))

	require.NoError(t, s.Put(key, l))

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.True(t, l.Equal(got))
}

func TestValuesPrefixesAreSeparate(t *testing.T) {
	kv := newKVStore(t)
	hashes := NewValues[crypto.Hash, crypto.Hash](kv, PrefixHash)
	sigs := NewValues[crypto.Hash, crypto.Ed25519Signature](kv, PrefixSignature)

	key := testutils.RandomHash(t)
	require.NoError(t, hashes.Put(key, testutils.RandomHash(t)))

	_, err := sigs.Get(key)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := sigs.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestValuesPutBatchAndAll(t *testing.T) {
	s := NewValues[value.Hash32, crypto.Ed25519Signature](newKVStore(t), PrefixSignature)

	entries := make([]Entry[value.Hash32, crypto.Ed25519Signature], 3)
	for i := range entries {
		var key value.Hash32
		key.Set(0, byte(3-i))
		entries[i] = Entry[value.Hash32, crypto.Ed25519Signature]{Key: key, Value: testutils.RandomEd25519Signature(t)}
	}
	require.NoError(t, s.PutBatch(entries))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	// keys sort by their first byte: 1, 2, 3
	for i, sig := range all {
		assert.True(t, entries[2-i].Value.Equal(sig))
	}

	var keys [][]byte
	require.NoError(t, s.Each(func(key []byte, _ crypto.Ed25519Signature) error {
		keys = append(keys, key)
		return nil
	}))
	require.Len(t, keys, 3)
	assert.Equal(t, byte(1), keys[0][0])
	assert.Len(t, keys[0], 32)
}

func TestValuesEachStops(t *testing.T) {
	s := NewValues[crypto.Hash, crypto.Hash](newKVStore(t), PrefixHash)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Put(testutils.RandomHash(t), testutils.RandomHash(t)))
	}

	stop := errors.New("stop")
	calls := 0
	err := s.Each(func([]byte, crypto.Hash) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestValuesCorruptValue(t *testing.T) {
	kv := newKVStore(t)
	s := NewValues[crypto.Hash, crypto.Scalar](kv, PrefixHash)
	key := testutils.RandomHash(t)

	require.NoError(t, kv.Put(makeKey(PrefixHash, key.Bytes()), bytes.Repeat([]byte{0xff}, crypto.ScalarSize)))
	_, err := s.Get(key)
	assert.ErrorIs(t, err, crypto.ErrNonCanonicalScalar)

	require.NoError(t, kv.Put(makeKey(PrefixHash, key.Bytes()), []byte{1}))
	_, err = s.Get(key)
	assert.ErrorIs(t, err, wire.ErrBufferUnderrun)
}

func TestPrefixToString(t *testing.T) {
	assert.Equal(t, "list", PrefixToString(PrefixList))
	assert.Equal(t, "unknown", PrefixToString(0xee))
}
