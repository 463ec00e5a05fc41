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

// CreateClientMsg submits a light client creation transaction on Host,
// tracking Counterparty, seeded with the given initial state. It carries
// plain chain ids only: the workflows in workflows.go build it without a
// chainpair.Id or AnyIdentified witness.
type CreateClientMsg struct {
	Host         chainpair.ChainID `json:"host"`
	Counterparty chainpair.ChainID `json:"counterparty"`
	Init         ClientState       `json:"init"`
}

func (m *CreateClientMsg) Kind() string { return "chains.create_client_msg" }
func (m *CreateClientMsg) String() string {
	return fmt.Sprintf("CreateClientMsg(%s tracks %s)", m.Host, m.Counterparty)
}

func (m *CreateClientMsg) HandleMsg(ctx context.Context, s queue.Store) error {
	st, ok := s.(*store.Store)
	if !ok {
		return queue.NewHandlerError(fmt.Errorf("chains: store is not a *store.Store"), false)
	}
	if _, ok := st.Handle(m.Host); !ok {
		return queue.NewHandlerError(fmt.Errorf("chains: no handle registered for host %s", m.Host), true)
	}
	st.CacheState(m.Host, "client/"+string(m.Counterparty), m.Init.Proof)
	return nil
}

// UpdateClientMsg submits a header update for an existing client tracking
// Counterparty on Host, advancing it to NewHeight.
type UpdateClientMsg struct {
	Host         chainpair.ChainID `json:"host"`
	Counterparty chainpair.ChainID `json:"counterparty"`
	NewHeight    uint64            `json:"new_height"`
}

func (m *UpdateClientMsg) Kind() string { return "chains.update_client_msg" }
func (m *UpdateClientMsg) String() string {
	return fmt.Sprintf("UpdateClientMsg(%s tracks %s -> %d)", m.Host, m.Counterparty, m.NewHeight)
}

func (m *UpdateClientMsg) HandleMsg(ctx context.Context, s queue.Store) error {
	st, ok := s.(*store.Store)
	if !ok {
		return queue.NewHandlerError(fmt.Errorf("chains: store is not a *store.Store"), false)
	}
	if _, ok := st.Handle(m.Host); !ok {
		// A host disappearing from the registry mid-workflow (e.g. config
		// reload) is transient from the workflow's perspective: retry.
		return queue.NewHandlerError(fmt.Errorf("chains: no handle registered for host %s", m.Host), true)
	}
	st.MarkObservedHeight(m.Counterparty, m.NewHeight)
	return nil
}

func init() {
	queue.RegisterMsgKind("chains.create_client_msg", func() queue.MsgHandler { return &CreateClientMsg{} })
	queue.RegisterMsgKind("chains.update_client_msg", func() queue.MsgHandler { return &UpdateClientMsg{} })
}
