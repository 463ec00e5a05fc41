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

package queue

import (
	"context"
	"fmt"
)

// Store is the capability context the reducer threads through every handler call.
// The core never interprets it beyond the Now() reading: concrete handlers (in the
// chains and store packages) type-assert it to the concrete *store.Store they were
// built against. Keeping it this narrow means the core package never needs to
// import the chain-registry package, avoiding an import cycle and keeping the
// engine a pure-ish state transformer over an opaque context, per the "Store is
// logically process-wide, modeled as a context passed explicitly" design note.
type Store interface {
	// Now returns the store's time source reading, wall-clock unix seconds.
	Now() uint64
}

// kinded is satisfied by every concrete payload type so the registry-based
// (de)serialization in registry.go can recover the registered type name
// ("@type") without a side-table keyed by reflection.
type kinded interface {
	// Kind is the stable "@type" string this payload was registered under.
	Kind() string
}

// EventHandler reacts synchronously to a chain-observed event.
type EventHandler interface {
	fmt.Stringer
	kinded
	HandleEvent(store Store) Value
}

// FetchHandler performs a (possibly suspending) read against a chain.
type FetchHandler interface {
	fmt.Stringer
	kinded
	HandleFetch(ctx context.Context, store Store) Value
}

// MsgHandler performs a (possibly suspending) write. A non-nil error surfaces to
// an enclosing RetryV, which inspects Recoverable via errors.As(err, *HandlerError).
type MsgHandler interface {
	fmt.Stringer
	kinded
	HandleMsg(ctx context.Context, store Store) error
}

// WaitHandler blocks (possibly suspending) on a chain-state predicate.
type WaitHandler interface {
	fmt.Stringer
	kinded
	HandleWait(ctx context.Context, store Store) Value
}

// Datum is a value produced by a Fetch and collected by an enclosing Aggregate,
// the way the source language's Data associated type is any RelayerMsgDatagram.
type Datum interface {
	fmt.Stringer
	kinded
}

// AggregateHandler is invoked once an Aggregate's inner queue has fully drained,
// synchronously, with every Datum the sub-queue produced (order unspecified).
type AggregateHandler interface {
	fmt.Stringer
	kinded
	HandleAggregate(data []Datum) Value
}
