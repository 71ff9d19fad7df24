package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const generationStripes = 256

// CachedStore is a read-through cache in front of another store.
// Writes go to the backing store first and then invalidate the cached entry.
//
// Every write bumps the generation of the key's stripe. A read only fills the
// cache when the stripe generation it saw before reading the backing store is
// unchanged, so a read racing with a write never caches the overwritten value.
type CachedStore struct {
	backing    Store
	cache      *freecache.Cache
	ttlSeconds int

	mutex       sync.Mutex
	generations [generationStripes]uint64
}

// NewCachedStore wraps backing with a freecache of cacheSize bytes (freecache enforces a 512KB minimum).
func NewCachedStore(backing Store, cacheSize int, ttlSeconds int) *CachedStore {
	return &CachedStore{
		backing:    backing,
		cache:      freecache.NewCache(cacheSize),
		ttlSeconds: ttlSeconds,
	}
}

// Uncached returns the store a CachedStore reads through, or store itself.
// Read-modify-write of a record must read through it: the cache of another
// replica can hold an older value for up to the cache TTL.
func Uncached(store Store) Store {
	if cs, ok := store.(*CachedStore); ok {
		return cs.backing
	}
	return store
}

func (s *CachedStore) Get(ctx context.Context, kind RecordKind, key string) ([]byte, error) {
	cacheKey := []byte(recordKey(kind, key))
	if data, err := s.cache.Get(cacheKey); err == nil {
		return data, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("record cache get [%s]: %s", cacheKey, err)
	}

	stripe := generationStripe(cacheKey)
	s.mutex.Lock()
	generation := s.generations[stripe]
	s.mutex.Unlock()

	data, err := s.backing.Get(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.generations[stripe] != generation {
		// written meanwhile, data may already be stale
		return data, nil
	}
	if err := s.cache.Set(cacheKey, data, s.ttlSeconds); err != nil {
		// too large for the cache, serve it uncached
		log.Tracef("record cache set [%s]: %s", cacheKey, err)
	}
	return data, nil
}

func (s *CachedStore) Set(ctx context.Context, kind RecordKind, key string, value []byte) error {
	if err := s.backing.Set(ctx, kind, key, value); err != nil {
		return err
	}
	s.invalidate(recordKey(kind, key))
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, kind RecordKind, key string) error {
	if err := s.backing.Delete(ctx, kind, key); err != nil {
		return err
	}
	s.invalidate(recordKey(kind, key))
	return nil
}

func (s *CachedStore) invalidate(key string) {
	cacheKey := []byte(key)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.generations[generationStripe(cacheKey)]++
	s.cache.Del(cacheKey)
}

func (s *CachedStore) HitRate() float64 {
	return s.cache.HitRate()
}

func generationStripe(cacheKey []byte) uint64 {
	return xxhash.Sum64(cacheKey) % generationStripes
}
