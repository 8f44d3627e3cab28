package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/eigerco/serialization/pkg/db"
	"github.com/eigerco/serialization/pkg/log"
)

var _ db.KVStore = (*KVStore)(nil)

const defaultCacheSize = 64 * 1024 * 1024 // 64MB

type config struct {
	path      string
	inMemory  bool
	cacheSize int64
}

// Option configures NewKVStore.
type Option func(*config)

// WithPath stores data on disk under dir.
func WithPath(dir string) Option {
	return func(c *config) {
		c.path = dir
		c.inMemory = false
	}
}

// WithInMemory keeps all data in memory. It is the default when no path is given.
func WithInMemory() Option {
	return func(c *config) {
		c.path = ""
		c.inMemory = true
	}
}

// WithCacheSize sets the block cache size in bytes.
func WithCacheSize(bytes int64) Option {
	return func(c *config) {
		c.cacheSize = bytes
	}
}

// KVStore is a db.KVStore backed by pebble.
type KVStore struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

// NewKVStore opens a store. Without options it is in memory.
func NewKVStore(opts ...Option) (*KVStore, error) {
	cfg := config{inMemory: true, cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache := pebble.NewCache(cfg.cacheSize)
	defer cache.Unref()

	pebbleOpts := &pebble.Options{
		Cache:            cache,
		MemTableSize:     32 * 1024 * 1024,  // 32MB
		MaxMemTableTotal: 128 * 1024 * 1024, // 128MB
	}
	if cfg.inMemory {
		pebbleOpts.FS = vfs.NewMem()
	}

	pdb, err := pebble.Open(cfg.path, pebbleOpts)
	if err != nil {
		log.Store.Error().Err(err).Str("path", cfg.path).Msg("failed to open pebble")
		return nil, err
	}
	log.Store.Debug().Str("path", cfg.path).Bool("in_memory", cfg.inMemory).Msg("pebble opened")

	return &KVStore{db: pdb}, nil
}

func (p *KVStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *KVStore) Has(key []byte) (bool, error) {
	_, err := p.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (p *KVStore) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Set(key, value, pebble.Sync)
}

func (p *KVStore) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Delete(key, pebble.Sync)
}

func (p *KVStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	log.Store.Debug().Msg("pebble closed")
	return p.db.Close()
}
