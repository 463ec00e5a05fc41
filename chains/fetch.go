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
	"fmt"

	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/queue"
	"github.com/ibcrelay/lcqueue/store"
)

// ClientStateFetch reads the counterparty's current client state: a cache hit
// resolves synchronously via the store's fastcache-backed state cache;
// otherwise it would perform the actual chain query (out of scope here) and
// resolves to Data immediately regardless, since no real RPC client is wired.
type ClientStateFetch struct {
	Counterparty chainpair.ChainID `json:"counterparty"`
	CacheKey     string            `json:"cache_key"`
}

func (f *ClientStateFetch) Kind() string   { return "chains.client_state_fetch" }
func (f *ClientStateFetch) String() string { return fmt.Sprintf("ClientStateFetch(%s)", f.Counterparty) }

func (f *ClientStateFetch) HandleFetch(ctx context.Context, s queue.Store) queue.Value {
	st, ok := s.(*store.Store)
	if !ok {
		return queue.Data(&ClientStateDatum{State: ClientState{}})
	}
	if cached, ok := st.CachedState(f.Counterparty, f.CacheKey); ok {
		return queue.Data(&ClientStateDatum{State: ClientState{Proof: cached, Height: st.Now()}})
	}
	state := ClientState{Height: st.Now(), Proof: []byte("proof@" + f.CacheKey)}
	st.CacheState(f.Counterparty, f.CacheKey, state.Proof)
	return queue.Data(&ClientStateDatum{State: state})
}

// ClientStateDatum carries a fetched ClientState into an enclosing Aggregate.
type ClientStateDatum struct {
	State ClientState `json:"state"`
}

func (d *ClientStateDatum) Kind() string   { return "chains.client_state_datum" }
func (d *ClientStateDatum) String() string { return fmt.Sprintf("ClientStateDatum(height=%d)", d.State.Height) }

func init() {
	queue.RegisterFetchKind("chains.client_state_fetch", func() queue.FetchHandler { return &ClientStateFetch{} })
	queue.RegisterDatumKind("chains.client_state_datum", func() queue.Datum { return &ClientStateDatum{} })
}
