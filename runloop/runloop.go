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

// Package runloop is the example outer run loop: it pops top-level queue
// values, steps them, and pushes successors, multiplexing independent
// workflows concurrently behind a bounded worker pool. None of this is part
// of the engine itself — the engine only knows how to reduce one Value at a
// time — this is the "external collaborator" the engine assumes exists.
package runloop

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/ibcrelay/lcqueue/event"
	"github.com/ibcrelay/lcqueue/internal/rlog"
	"github.com/ibcrelay/lcqueue/metrics"
	"github.com/ibcrelay/lcqueue/queue"
)

// Cause labels why a workflow stopped being stepped.
type Cause int

const (
	CauseCompleted Cause = iota
	CauseTimeoutExpired
	CauseError
)

func (c Cause) String() string {
	switch c {
	case CauseCompleted:
		return "completed"
	case CauseTimeoutExpired:
		return "timeout_expired"
	case CauseError:
		return "error"
	default:
		return fmt.Sprintf("Cause(%d)", int(c))
	}
}

// WorkflowEnqueued is sent once, when a workflow is first handed to Enqueue.
type WorkflowEnqueued struct {
	ID uuid.UUID
}

// WorkflowTerminated is sent once a workflow's top-level value reduces to
// nil (Completed), a step returns an error (Error: a non-recoverable Msg
// failure, or a recoverable one with no retries left or no enclosing Retry),
// or the run loop observes a Timeout expire (§ decision 3:
// the engine itself still just returns (nil, nil) for an expired Timeout;
// this notification is an ambient-layer addition, not a core semantics change).
type WorkflowTerminated struct {
	ID    uuid.UUID
	Cause Cause
	Err   error
}

// Persistence is the storage seam the run loop assumes exists (§1's "the
// top-level persistent-storage-backed run loop" is explicitly out of the
// engine's scope; this interface is the shape that boundary takes). PutInput
// persists the value about to be stepped; CommitSuccessor replaces it with
// the result of that step in one storage transaction when the backend
// supports one, deleting the persisted entry when successor is nil.
type Persistence interface {
	PutInput(ctx context.Context, id uuid.UUID, v queue.Value) error
	CommitSuccessor(ctx context.Context, id uuid.UUID, successor queue.Value) error
}

// MemoryPersistence is a non-durable Persistence used by the example binary
// and tests; a real deployment swaps in a transactional KV or SQL-backed one
// without the run loop caring, which is the point of the interface.
type MemoryPersistence struct {
	mu    sync.Mutex
	state map[uuid.UUID]queue.Value
}

// NewMemoryPersistence builds an empty in-memory Persistence.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{state: make(map[uuid.UUID]queue.Value)}
}

func (p *MemoryPersistence) PutInput(_ context.Context, id uuid.UUID, v queue.Value) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state[id] = v
	return nil
}

func (p *MemoryPersistence) CommitSuccessor(_ context.Context, id uuid.UUID, successor queue.Value) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if successor == nil {
		delete(p.state, id)
		return nil
	}
	p.state[id] = successor
	return nil
}

// Pending returns the currently persisted value for id, for tests and for a
// crash-recovery pass that re-Enqueues everything still outstanding.
func (p *MemoryPersistence) Pending(id uuid.UUID) (queue.Value, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.state[id]
	return v, ok
}

// Runner multiplexes independent top-level workflows. Parallelism comes
// entirely from here, never from the engine: each workflow is stepped
// sequentially end to end by exactly one goroutine, bounded by sem.
type Runner struct {
	store queue.Store
	clock queue.Clock

	persistence Persistence
	sem         *semaphore.Weighted

	enqueued   event.Feed
	terminated event.Feed
	scope      event.SubscriptionScope

	metrics *metrics.Registry
	log     rlog.Logger
}

// New builds a Runner. maxConcurrent bounds how many workflows are stepped
// at once; reg may be nil, in which case metrics are skipped.
func New(store queue.Store, clock queue.Clock, persistence Persistence, maxConcurrent int64, reg *metrics.Registry) *Runner {
	return &Runner{
		store:       store,
		clock:       clock,
		persistence: persistence,
		sem:         semaphore.NewWeighted(maxConcurrent),
		metrics:     reg,
		log:         rlog.New(rlog.NewTerminalHandler(os.Stderr), rlog.LvlInfo, "component", "runloop"),
	}
}

// SubscribeEnqueued registers ch to receive WorkflowEnqueued notifications.
func (r *Runner) SubscribeEnqueued(ch chan<- WorkflowEnqueued) event.Subscription {
	return r.scope.Track(r.enqueued.Subscribe(ch))
}

// SubscribeTerminated registers ch to receive WorkflowTerminated notifications.
func (r *Runner) SubscribeTerminated(ch chan<- WorkflowTerminated) event.Subscription {
	return r.scope.Track(r.terminated.Subscribe(ch))
}

// Close unsubscribes every feed consumer registered through the Subscribe*
// methods, the way a server's shutdown path closes its SubscriptionScope.
func (r *Runner) Close() { r.scope.Close() }

// Enqueue stamps v with a fresh workflow id, persists it, and steps it to
// completion on a goroutine tracked by g, bounded by the runner's
// concurrency semaphore. It returns the generated id immediately; lifecycle
// is observable via Subscribe*.
func (r *Runner) Enqueue(ctx context.Context, g *errgroup.Group, v queue.Value) (uuid.UUID, error) {
	id := uuid.New()
	if err := r.persistence.PutInput(ctx, id, v); err != nil {
		return uuid.Nil, errors.Wrap(err, "runloop: persisting initial input")
	}
	r.enqueued.Send(WorkflowEnqueued{ID: id})
	if r.metrics != nil {
		r.metrics.QueueDepth.Inc()
	}
	g.Go(func() error { return r.run(ctx, id, v) })
	return id, nil
}

func (r *Runner) run(ctx context.Context, id uuid.UUID, v queue.Value) error {
	l := r.log.New("workflow", id)
	defer func() {
		if r.metrics != nil {
			r.metrics.QueueDepth.Dec()
		}
	}()

	for v != nil {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return errors.Wrap(err, "runloop: acquiring worker slot")
		}

		deadline, hasDeadline := timeoutDeadline(v)
		tag := variantTag(v)

		start := time.Now()
		next, stepErr := queue.Step(ctx, v, r.store, 0)
		elapsed := time.Since(start)
		r.sem.Release(1)

		if r.metrics != nil {
			r.metrics.StepsTotal.WithLabelValues(tag).Inc()
			r.metrics.StepDuration.WithLabelValues(tag).Observe(elapsed.Seconds())
			if _, ok := v.(queue.RetryV); ok {
				r.metrics.RetriesTotal.Inc()
			}
			if agg, ok := v.(queue.AggregateV); ok && len(agg.Queue) == 0 {
				r.metrics.AggregateFanIn.Observe(float64(len(agg.Data)))
			}
		}

		if commitErr := r.persistence.CommitSuccessor(ctx, id, next); commitErr != nil {
			return errors.Wrap(commitErr, "runloop: committing successor")
		}

		if stepErr != nil {
			l.Error("workflow terminated with error", "err", stepErr)
			r.terminated.Send(WorkflowTerminated{ID: id, Cause: CauseError, Err: stepErr})
			return nil
		}

		if next == nil {
			cause := CauseCompleted
			if hasDeadline && r.clock.Now() > deadline {
				cause = CauseTimeoutExpired
			}
			l.Info("workflow terminated", "cause", cause)
			r.terminated.Send(WorkflowTerminated{ID: id, Cause: cause})
			return nil
		}

		v = next
	}
	return nil
}

// timeoutDeadline reports the deadline of the Timeout this value will invoke
// next, if any, looking through a leading Sequence the way Step itself does
// (a Sequence steps its head first). This is best-effort bookkeeping for the
// WorkflowTerminated{CauseTimeoutExpired} notification only; it never
// changes what gets stepped.
func timeoutDeadline(v queue.Value) (uint64, bool) {
	for {
		switch m := v.(type) {
		case queue.TimeoutV:
			return m.Deadline, true
		case queue.SequenceV:
			if len(m.Queue) == 0 {
				return 0, false
			}
			v = m.Queue[0]
		default:
			return 0, false
		}
	}
}

// variantTag labels a Value by its reduction-rule variant for metrics, the
// same partition Step's own type switch uses.
func variantTag(v queue.Value) string {
	switch v.(type) {
	case queue.EventV:
		return "event"
	case queue.DataV:
		return "data"
	case queue.FetchV:
		return "fetch"
	case queue.MsgV:
		return "msg"
	case queue.WaitV:
		return "wait"
	case queue.DeferUntilV:
		return "defer_until"
	case queue.RepeatV:
		return "repeat"
	case queue.TimeoutV:
		return "timeout"
	case queue.SequenceV:
		return "sequence"
	case queue.RetryV:
		return "retry"
	case queue.AggregateV:
		return "aggregate"
	case queue.NoopV:
		return "noop"
	default:
		return fmt.Sprintf("%T", v)
	}
}
