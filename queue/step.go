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
	"time"

	"github.com/ibcrelay/lcqueue/internal/rlog"
)

// retryDelaySeconds is the fixed backoff a RetryV schedules between attempts.
const retryDelaySeconds = 3

// pollGrain is DeferUntilV's fixed polling interval; deferrals are coarse
// compared to it (blockchain finality vastly exceeds one second), which is what
// makes persisting the pending value between polls trivial.
const pollGrain = time.Second

// Step reduces v by exactly one rewrite, per the exhaustive rules in the queue
// value language. depth is advisory, used only for log correlation; it does not
// bound recursion (Go's growable goroutine stacks make the "boxed future" trick
// the source language needs for recursive-and-suspending code unnecessary here:
// a direct recursive call already suspends cooperatively at its own blocking
// points). A nil Value with a nil error means v was terminal.
func Step(ctx context.Context, v Value, store Store, depth int) (Value, error) {
	rlog.Debug("handling message", "depth", depth, "msg", v.String())

	switch m := v.(type) {
	case EventV:
		return m.Event.HandleEvent(store), nil

	case DataV:
		rlog.Error("received data outside of an aggregation", "data", m.Data)
		return nil, nil

	case FetchV:
		return m.Fetch.HandleFetch(ctx, store), nil

	case MsgV:
		if err := m.Msg.HandleMsg(ctx, store); err != nil {
			return nil, err
		}
		return nil, nil

	case WaitV:
		return m.Wait.HandleWait(ctx, store), nil

	case DeferUntilV:
		return stepDefer(ctx, m, store)

	case TimeoutV:
		if store.Now() > m.Deadline {
			rlog.Warn("message expired", "deadline", m.Deadline, "msg", m.Msg.String())
			return nil, nil
		}
		return Step(ctx, m.Msg, store, depth+1)

	case SequenceV:
		return stepSequence(ctx, m, store, depth)

	case RetryV:
		return stepRetry(ctx, m, store, depth)

	case RepeatV:
		if m.Times == 0 {
			return nil, nil
		}
		next := m.Times
		if next != MaxRepeat {
			next--
		}
		return FlattenSeq(Seq(m.Msg, RepeatV{Times: next, Msg: m.Msg})), nil

	case AggregateV:
		return stepAggregate(ctx, m, store, depth)

	case NoopV:
		return nil, nil

	default:
		return nil, nil
	}
}

func stepDefer(ctx context.Context, m DeferUntilV, store Store) (Value, error) {
	if m.Point == DeferRelative {
		return Defer(store.Now() + m.Seconds), nil
	}

	if store.Now() >= m.Seconds {
		return nil, nil
	}

	// The sole scheduler yield: cooperative, so other workflows multiplexed by
	// the outer run loop continue to make progress while this one waits.
	t := time.NewTimer(pollGrain)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return Defer(m.Seconds), nil
}

func stepSequence(ctx context.Context, m SequenceV, store Store, depth int) (Value, error) {
	if len(m.Queue) == 0 {
		return nil, nil
	}

	head := m.Queue[0]
	rest := m.Queue[1:]

	successor, err := Step(ctx, head, store, depth+1)
	if err != nil {
		return nil, err
	}

	queue := make([]Value, 0, len(rest)+1)
	if successor != nil {
		queue = append(queue, successor)
	}
	queue = append(queue, rest...)

	return FlattenSeq(SequenceV{Queue: queue}), nil
}

func stepRetry(ctx context.Context, m RetryV, store Store, depth int) (Value, error) {
	ok, err := Step(ctx, m.Msg, store, depth+1)
	if err == nil {
		return ok, nil
	}

	if m.Remaining == 0 || !recoverableErr(err) {
		rlog.Error("msg failed after all retries", "msg", m.Msg.String(), "err", err)
		return nil, err
	}

	retriesLeft := m.Remaining - 1
	rlog.Warn("msg failed, retrying", "msg", m.Msg.String(), "retriesLeft", retriesLeft, "err", err)

	return Seq(
		Defer(store.Now()+retryDelaySeconds),
		RetryV{Remaining: retriesLeft, Msg: m.Msg},
	), nil
}

func stepAggregate(ctx context.Context, m AggregateV, store Store, depth int) (Value, error) {
	if len(m.Queue) == 0 {
		return m.Receiver.HandleAggregate(m.Data), nil
	}

	head := m.Queue[0]
	rest := m.Queue[1:]

	successor, err := Step(ctx, head, store, depth+1)
	if err != nil {
		return nil, err
	}

	queue := make([]Value, len(rest), len(rest)+1)
	copy(queue, rest)
	data := m.Data

	switch s := successor.(type) {
	case nil:
		// dropped
	case DataV:
		data = append(append([]Datum{}, data...), s.Data)
	default:
		queue = append(queue, s)
	}

	return AggregateV{Queue: queue, Data: data, Receiver: m.Receiver}, nil
}
