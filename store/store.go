// Copyright 2026 The lcqueue Authors
// This file is part of the lcqueue library.
//
// This software is provided "as is", without warranty of any kind,
// express or implied, including but not limited to the warranties
// of merchantability, fitness for a particular purpose and
// noninfringement. In no event shall the authors or copyright
// holders be liable for any claim, damages, or other liability,
// whether in an action of contract, tort or otherwise, arising
// from, out of or in connection with the software or the use or
// other dealings in the software.

// Package store implements queue.Store: the registry mapping chain ids to
// concrete chain handles, plus the shared caches handlers consult before
// doing network I/O. Concrete chain adapters (querying a Cosmos node,
// fetching an Ethereum Merkle proof) are out of scope for this module; Store
// only holds what the capability interfaces in the queue package need.
package store

import (
	"encoding/binary"
	"hash/fnv"
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/holiman/bloomfilter/v2"
	"github.com/pkg/errors"

	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/queue"
)

// ChainHandle is the minimal capability every registered chain must expose to
// the store; concrete per-chain clients (EVM JSON-RPC, Cosmos gRPC, Union)
// embed this and add their own query/broadcast methods, consumed directly by
// the handler implementations in the chains package.
type ChainHandle interface {
	ChainID() chainpair.ChainID
	Kind() string
}

// Store is the concrete, process-wide queue.Store implementation: a chain
// registry guarded by a RWMutex (handles are cheaply clonable and read far
// more often than registered), a fastcache-backed client/consensus state
// cache, and a bloom filter used to short-circuit repeated Wait polls against
// heights already observed.
type Store struct {
	clock queue.Clock

	mu     sync.RWMutex
	chains map[chainpair.ChainID]ChainHandle

	stateCache *fastcache.Cache

	seenMu sync.Mutex
	seen   *bloomfilter.Filter
}

// New builds a Store. cacheBytes sizes the fastcache client/consensus-state
// cache (fastcache rounds up internally); seenCapacity sizes the bloom filter
// used for Wait short-circuiting.
func New(clock queue.Clock, cacheBytes int, seenCapacity uint64) (*Store, error) {
	filter, err := bloomfilter.New(seenCapacity*20, 4)
	if err != nil {
		return nil, errors.Wrap(err, "store: creating bloom filter")
	}
	return &Store{
		clock:      clock,
		chains:     make(map[chainpair.ChainID]ChainHandle),
		stateCache: fastcache.New(cacheBytes),
		seen:       filter,
	}, nil
}

// Now implements queue.Store.
func (s *Store) Now() uint64 { return s.clock.Now() }

// Register adds or replaces the handle for h's chain id.
func (s *Store) Register(h ChainHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chains[h.ChainID()] = h
}

// Handle looks up the registered handle for id.
func (s *Store) Handle(id chainpair.ChainID) (ChainHandle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.chains[id]
	return h, ok
}

// CacheState stores a light-client or consensus state blob keyed by chain id
// and an opaque key (typically a height or a client id).
func (s *Store) CacheState(chainID chainpair.ChainID, key string, value []byte) {
	s.stateCache.Set(stateCacheKey(chainID, key), value)
}

// CachedState retrieves a previously cached state blob, if present.
func (s *Store) CachedState(chainID chainpair.ChainID, key string) ([]byte, bool) {
	return s.stateCache.HasGet(nil, stateCacheKey(chainID, key))
}

func stateCacheKey(chainID chainpair.ChainID, key string) []byte {
	return []byte(string(chainID) + "/" + key)
}

// HasObservedHeight reports whether height was already marked seen for
// chainID, allowing a WaitHandler to skip a redundant chain query. False
// positives are possible (it is a bloom filter); HeightWait treats a positive,
// false or not, as the height having been reached.
func (s *Store) HasObservedHeight(chainID chainpair.ChainID, height uint64) bool {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	return s.seen.ContainsHash(heightKey(chainID, height))
}

// MarkObservedHeight records that height has been observed for chainID.
func (s *Store) MarkObservedHeight(chainID chainpair.ChainID, height uint64) {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	s.seen.AddHash(heightKey(chainID, height))
}

func heightKey(chainID chainpair.ChainID, height uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(chainID))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], height)
	h.Write(buf[:])
	return h.Sum64()
}
