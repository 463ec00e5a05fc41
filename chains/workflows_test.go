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

package chains

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/queue"
	"github.com/ibcrelay/lcqueue/store"
)

type fakeHandle struct{ id chainpair.ChainID }

func (h fakeHandle) ChainID() chainpair.ChainID { return h.id }
func (fakeHandle) Kind() string                 { return "test" }

func TestClientCreateWorkflowEndToEnd(t *testing.T) {
	st, err := store.New(queue.FixedClock(1000), 1<<16, 16)
	require.NoError(t, err)
	st.Register(fakeHandle{id: "union-1"})

	ctx := context.Background()
	v := NewClientCreateWorkflow("union-1", "eth-1")

	for i := 0; i < 10; i++ {
		next, err := queue.Step(ctx, v, st, 0)
		require.NoError(t, err)
		if next == nil {
			got, ok := st.CachedState("eth-1", "initial")
			require.True(t, ok)
			require.NotEmpty(t, got)
			return
		}
		v = next
	}
	t.Fatal("workflow did not terminate within 10 steps")
}

func TestHandshakeWorkflowCreatesBothClients(t *testing.T) {
	st, err := store.New(queue.FixedClock(1000), 1<<16, 16)
	require.NoError(t, err)
	st.Register(fakeHandle{id: "union-1"})
	st.Register(fakeHandle{id: "eth-1"})

	// Seed each side's fetched state with distinguishable content so the
	// assertions below can tell which state landed in which host's client.
	st.CacheState("eth-1", "handshake", []byte("state-of-eth-1"))
	st.CacheState("union-1", "handshake", []byte("state-of-union-1"))

	ctx := context.Background()
	v := NewHandshakeWorkflow("union-1", "eth-1")

	var last queue.Value
	for i := 0; i < 10; i++ {
		next, err := queue.Step(ctx, v, st, 0)
		require.NoError(t, err)
		last = next
		if next == nil {
			break
		}
		v = next
	}
	require.Nil(t, last)

	_, ok := st.CachedState("eth-1", "handshake")
	require.True(t, ok)
	_, ok = st.CachedState("union-1", "handshake")
	require.True(t, ok)

	// union-1 tracks eth-1: its new client must be seeded with eth-1's state,
	// not its own.
	unionClient, ok := st.CachedState("union-1", "client/eth-1")
	require.True(t, ok)
	require.Equal(t, []byte("state-of-eth-1"), unionClient)

	// eth-1 tracks union-1: its new client must be seeded with union-1's
	// state, not its own.
	ethClient, ok := st.CachedState("eth-1", "client/union-1")
	require.True(t, ok)
	require.Equal(t, []byte("state-of-union-1"), ethClient)
}
