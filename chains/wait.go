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

// HeightWait resolves to Noop once Chain has reached TargetHeight, otherwise
// re-defers itself by the configured poll interval. It consults the store's
// bloom filter first so a height already observed by some other workflow
// short-circuits the wait without re-querying the chain.
type HeightWait struct {
	Chain        chainpair.ChainID `json:"chain"`
	TargetHeight uint64            `json:"target_height"`
	PollSeconds  uint64            `json:"poll_seconds"`
}

func (w *HeightWait) Kind() string { return "chains.height_wait" }
func (w *HeightWait) String() string {
	return fmt.Sprintf("HeightWait(%s >= %d)", w.Chain, w.TargetHeight)
}

func (w *HeightWait) HandleWait(ctx context.Context, s queue.Store) queue.Value {
	st, ok := s.(*store.Store)
	if !ok {
		return queue.Noop
	}
	if st.HasObservedHeight(w.Chain, w.TargetHeight) {
		return queue.Noop
	}
	poll := w.PollSeconds
	if poll == 0 {
		poll = 5
	}
	return queue.Seq(queue.DeferRelative(poll), queue.Wait(w))
}

func init() {
	queue.RegisterWaitKind("chains.height_wait", func() queue.WaitHandler { return &HeightWait{} })
}
