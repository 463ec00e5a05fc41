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

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/queue"
)

type fakeHandle struct {
	id   chainpair.ChainID
	kind string
}

func (h fakeHandle) ChainID() chainpair.ChainID { return h.id }
func (h fakeHandle) Kind() string               { return h.kind }

func TestStoreRegisterAndLookup(t *testing.T) {
	s, err := New(queue.FixedClock(1000), 1<<20, 1024)
	require.NoError(t, err)

	s.Register(fakeHandle{id: "union-1", kind: "union"})

	h, ok := s.Handle("union-1")
	require.True(t, ok)
	require.Equal(t, "union", h.Kind())

	_, ok = s.Handle("missing")
	require.False(t, ok)
}

func TestStoreNowDelegatesToClock(t *testing.T) {
	s, err := New(queue.FixedClock(42), 1<<16, 16)
	require.NoError(t, err)
	require.EqualValues(t, 42, s.Now())
}

func TestStoreStateCacheRoundTrip(t *testing.T) {
	s, err := New(queue.FixedClock(1), 1<<16, 16)
	require.NoError(t, err)

	s.CacheState("union-1", "client-07", []byte("consensus-state-blob"))

	got, ok := s.CachedState("union-1", "client-07")
	require.True(t, ok)
	require.Equal(t, []byte("consensus-state-blob"), got)

	_, ok = s.CachedState("union-1", "client-08")
	require.False(t, ok)
}

func TestStoreObservedHeightBloomFilter(t *testing.T) {
	s, err := New(queue.FixedClock(1), 1<<16, 1024)
	require.NoError(t, err)

	require.False(t, s.HasObservedHeight("eth-1", 100))
	s.MarkObservedHeight("eth-1", 100)
	require.True(t, s.HasObservedHeight("eth-1", 100))
}
