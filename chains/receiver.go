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
	"fmt"

	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/queue"
)

// HandshakeReceiver fires once both sides of a client-creation handshake have
// fetched their counterparty's initial state, submitting a CreateClientMsg on
// each host with the state fetched for the other.
type HandshakeReceiver struct {
	HostA chainpair.ChainID `json:"host_a"`
	HostB chainpair.ChainID `json:"host_b"`
}

func (r *HandshakeReceiver) Kind() string { return "chains.handshake_receiver" }
func (r *HandshakeReceiver) String() string {
	return fmt.Sprintf("HandshakeReceiver(%s <-> %s)", r.HostA, r.HostB)
}

// HandleAggregate expects exactly two ClientStateDatum values, in the same
// order NewHandshakeWorkflow enqueued the fetches: data[0] is HostB's state
// (fetched with Counterparty: HostB) and feeds HostA's CreateClientMsg;
// data[1] is HostA's state and feeds HostB's.
func (r *HandshakeReceiver) HandleAggregate(data []queue.Datum) queue.Value {
	if len(data) != 2 {
		return queue.Noop
	}
	stateA, okA := data[0].(*ClientStateDatum)
	stateB, okB := data[1].(*ClientStateDatum)
	if !okA || !okB {
		return queue.Noop
	}

	return queue.Seq(
		queue.Msg(&CreateClientMsg{Host: r.HostA, Counterparty: r.HostB, Init: stateA.State}),
		queue.Msg(&CreateClientMsg{Host: r.HostB, Counterparty: r.HostA, Init: stateB.State}),
	)
}

func init() {
	queue.RegisterAggregateKind("chains.handshake_receiver", func() queue.AggregateHandler { return &HandshakeReceiver{} })
}
