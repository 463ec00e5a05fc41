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
	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/queue"
)

// NewClientCreateWorkflow builds the example workflow for standing up a
// single light client on host tracking counterparty: fetch the
// counterparty's current state, then submit the creation message once. The
// message is not wrapped in a Retry, so any failure ends the workflow.
func NewClientCreateWorkflow(host, counterparty chainpair.ChainID) queue.Value {
	return queue.Seq(
		queue.Aggregate(
			[]queue.Value{queue.Fetch(&ClientStateFetch{Counterparty: counterparty, CacheKey: "initial"})},
			nil,
			&singleStateReceiver{Host: host, Counterparty: counterparty},
		),
	)
}

// singleStateReceiver adapts a single-fetch Aggregate into a CreateClientMsg,
// the one-sided counterpart of HandshakeReceiver, used when only one side of
// the pair needs a new client (the other already has one).
type singleStateReceiver struct {
	Host         chainpair.ChainID `json:"host"`
	Counterparty chainpair.ChainID `json:"counterparty"`
}

func (r *singleStateReceiver) Kind() string   { return "chains.single_state_receiver" }
func (r *singleStateReceiver) String() string { return "singleStateReceiver(" + string(r.Host) + ")" }

func (r *singleStateReceiver) HandleAggregate(data []queue.Datum) queue.Value {
	if len(data) != 1 {
		return queue.Noop
	}
	state, ok := data[0].(*ClientStateDatum)
	if !ok {
		return queue.Noop
	}
	return queue.Msg(&CreateClientMsg{Host: r.Host, Counterparty: r.Counterparty, Init: state.State})
}

// NewUpdateClientWorkflow keeps a client on host tracking counterparty
// current: wait for counterparty to pass targetHeight, then submit an update,
// retrying the submission up to 3 times. The whole thing repeats forever,
// which is how a relayer keeps a client alive for the lifetime of the
// process rather than as a one-shot operation.
func NewUpdateClientWorkflow(host, counterparty chainpair.ChainID, targetHeight uint64) queue.Value {
	once := queue.Seq(
		queue.Wait(&HeightWait{Chain: counterparty, TargetHeight: targetHeight, PollSeconds: 5}),
		queue.Retry(3, queue.Msg(&UpdateClientMsg{Host: host, Counterparty: counterparty, NewHeight: targetHeight})),
	)
	return queue.Repeat(queue.MaxRepeat, once)
}

// NewHandshakeWorkflow builds the two-sided client-creation handshake: fetch
// each side's initial state concurrently (as far as the single-threaded
// reducer's rotation allows) and create both clients once both fetches have
// landed, via HandshakeReceiver's fan-in.
func NewHandshakeWorkflow(a, b chainpair.ChainID) queue.Value {
	return queue.Aggregate(
		[]queue.Value{
			queue.Fetch(&ClientStateFetch{Counterparty: b, CacheKey: "handshake"}),
			queue.Fetch(&ClientStateFetch{Counterparty: a, CacheKey: "handshake"}),
		},
		nil,
		&HandshakeReceiver{HostA: a, HostB: b},
	)
}

func init() {
	queue.RegisterAggregateKind("chains.single_state_receiver", func() queue.AggregateHandler { return &singleStateReceiver{} })
}
