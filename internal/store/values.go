package store

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/eigerco/serialization/pkg/db"
	"github.com/eigerco/serialization/pkg/db/pebble"
	"github.com/eigerco/serialization/pkg/log"
	"github.com/eigerco/serialization/pkg/serialization/value"
	"github.com/eigerco/serialization/pkg/serialization/wire"
)

// Entry pairs a key with the value stored under it.
type Entry[K encoding.BinaryMarshaler, V any] struct {
	Key   K
	Value V
}

// Values persists values of one type in their wire encoding, keyed by prefix || key bytes.
type Values[K encoding.BinaryMarshaler, V any, PV value.Element[V]] struct {
	db.KVStore
	prefix byte
}

// NewValues creates a typed store over kv using prefix to separate it from other stores.
func NewValues[K encoding.BinaryMarshaler, V any, PV value.Element[V]](kv db.KVStore, prefix byte) *Values[K, V, PV] {
	return &Values[K, V, PV]{KVStore: kv, prefix: prefix}
}

func (s *Values[K, V, PV]) key(k K) ([]byte, error) {
	b, err := k.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}
	return makeKey(s.prefix, b), nil
}

// Put stores v under k, replacing any previous value.
func (s *Values[K, V, PV]) Put(k K, v V) error {
	key, err := s.key(k)
	if err != nil {
		return err
	}
	if err := s.KVStore.Put(key, wire.Marshal(PV(&v))); err != nil {
		return fmt.Errorf("put %s: %w", PrefixToString(s.prefix), err)
	}
	return nil
}

// Get returns the value stored under k or an error wrapping ErrNotFound.
func (s *Values[K, V, PV]) Get(k K) (V, error) {
	var v V
	key, err := s.key(k)
	if err != nil {
		return v, err
	}
	b, err := s.KVStore.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return v, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return v, fmt.Errorf("get %s: %w", PrefixToString(s.prefix), err)
	}
	if err := wire.Unmarshal(b, PV(&v)); err != nil {
		log.Store.Error().Err(err).Str("store", PrefixToString(s.prefix)).Hex("key", key).Msg("stored value does not decode")
		var zero V
		return zero, fmt.Errorf("unmarshal %s: %w", PrefixToString(s.prefix), err)
	}
	return v, nil
}

func (s *Values[K, V, PV]) Has(k K) (bool, error) {
	key, err := s.key(k)
	if err != nil {
		return false, err
	}
	return s.KVStore.Has(key)
}

func (s *Values[K, V, PV]) Delete(k K) error {
	key, err := s.key(k)
	if err != nil {
		return err
	}
	if err := s.KVStore.Delete(key); err != nil {
		return fmt.Errorf("delete %s: %w", PrefixToString(s.prefix), err)
	}
	return nil
}

// PutBatch stores all entries atomically.
func (s *Values[K, V, PV]) PutBatch(entries []Entry[K, V]) error {
	batch := s.NewBatch()
	defer batch.Close() //nolint:errcheck

	for i := range entries {
		key, err := s.key(entries[i].Key)
		if err != nil {
			return err
		}
		if err := batch.Put(key, wire.Marshal(PV(&entries[i].Value))); err != nil {
			return fmt.Errorf("batch put: %w", err)
		}
	}
	if err := batch.Commit(); err != nil {
		log.Store.Debug().Err(err).Int("entries", len(entries)).Msg("batch commit failed")
		return fmt.Errorf(ErrFailedBatchCommit, err)
	}
	return nil
}

// Each calls fn for every stored value in key order with the key bytes that follow the prefix.
// Iteration stops at the first error.
func (s *Values[K, V, PV]) Each(fn func(key []byte, v V) error) error {
	start := []byte{s.prefix}
	iter, err := s.NewIterator(start, db.PrefixEnd(start))
	if err != nil {
		return fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close() //nolint:errcheck

	for iter.Next() {
		b, err := iter.Value()
		if err != nil {
			return fmt.Errorf("iterator value: %w", err)
		}
		var v V
		if err := wire.Unmarshal(b, PV(&v)); err != nil {
			return fmt.Errorf("unmarshal %s: %w", PrefixToString(s.prefix), err)
		}
		if err := fn(iter.Key()[1:], v); err != nil {
			return err
		}
	}
	return nil
}

// All returns every stored value in key order.
func (s *Values[K, V, PV]) All() ([]V, error) {
	var values []V
	err := s.Each(func(_ []byte, v V) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
