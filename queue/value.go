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

// Package queue implements the recursive queue-message interpreter that drives
// relayer workflows: establishing and maintaining light-client connections between
// heterogeneous chains. A Value is a tagged recursive sum type; Step reduces one
// Value to its successor (or to nothing, if terminal).
package queue

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Value is the sealed queue-message sum type. The unexported method restricts
// implementations to this package, the way ast.Node restricts Go's own AST nodes;
// callers build values with the constructor functions below (Event, Fetch, Msg, ...)
// rather than composite literals.
type Value interface {
	fmt.Stringer
	queueValue()
	typeTag() string
}

// DeferPoint distinguishes an absolute deadline from one relative to now().
type DeferPoint int

const (
	DeferAbsolute DeferPoint = iota
	DeferRelative
)

func (p DeferPoint) String() string {
	switch p {
	case DeferAbsolute:
		return "absolute"
	case DeferRelative:
		return "relative"
	default:
		return fmt.Sprintf("DeferPoint(%d)", int(p))
	}
}

// EventV reacts synchronously to a chain-observed event, producing a new Value.
type EventV struct{ Event EventHandler }

// DataV carries a value produced by a Fetch. Only meaningful inside an enclosing
// AggregateV; at top level it is a stray-data anomaly (logged and dropped).
type DataV struct{ Data Datum }

// FetchV is a read against a chain; may suspend.
type FetchV struct{ Fetch FetchHandler }

// MsgV is a write (submit a transaction); may suspend. Success has no successor.
type MsgV struct{ Msg MsgHandler }

// WaitV blocks on a chain-state predicate; may suspend.
type WaitV struct{ Wait WaitHandler }

// DeferUntilV is the time gate: an absolute DeferUntilV resolves to Noop once
// now() reaches Seconds; a relative one first resolves into an absolute one.
type DeferUntilV struct {
	Point   DeferPoint
	Seconds uint64
}

// RepeatV unfolds Msg Times times in sequence. Times == MaxRepeat is treated as
// unbounded, matching the source language's "times = infinity permitted".
type RepeatV struct {
	Times uint64
	Msg   Value
}

// MaxRepeat is the sentinel "repeat forever" value for RepeatV.Times.
const MaxRepeat = ^uint64(0)

// TimeoutV executes Msg only while now() <= Deadline; past it, Msg is dropped
// with a warning and never invoked.
type TimeoutV struct {
	Deadline uint64
	Msg      Value
}

// SequenceV is FIFO composition: the head is advanced one step at a time, and its
// successor (if any) is placed back at the front, so it never gets overtaken by
// siblings further back in the queue.
type SequenceV struct{ Queue []Value }

// RetryV re-schedules Msg with Remaining-1 after a fixed backoff on recoverable
// failure; Remaining strictly decreases and a zero-remaining failure propagates.
type RetryV struct {
	Remaining uint8
	Msg       Value
}

// AggregateV is the fan-in combinator: it drains Queue, siphoning off any
// successor that resolves to DataV into Data, and rotating everything else to
// the back of Queue, until Queue is empty; then Receiver.HandleAggregate(Data)
// supplies the terminal successor.
type AggregateV struct {
	Queue    []Value
	Data     []Datum
	Receiver AggregateHandler
}

// DataSet returns v.Data as an order-independent set, honoring the fan-in's
// "unordered multiset" guarantee at the API boundary: a receiver that only
// cares about which data arrived, not how many times or in what order,
// should use this instead of the ordered Data slice. Equality follows Go's
// interface comparison rules: the same Datum value appearing twice in Data
// collapses to one entry, but two pointer datums with equal contents (e.g.
// from two separate fetches) stay two distinct entries.
func (v AggregateV) DataSet() mapset.Set[Datum] {
	s := mapset.NewThreadUnsafeSet[Datum]()
	for _, d := range v.Data {
		s.Add(d)
	}
	return s
}

// NoopV is the terminal no-op; Noop is its sole instance.
type NoopV struct{}

// Noop is the terminal value: stepping it always yields (nil, nil).
var Noop Value = NoopV{}

func (EventV) queueValue()       {}
func (DataV) queueValue()        {}
func (FetchV) queueValue()       {}
func (MsgV) queueValue()         {}
func (WaitV) queueValue()        {}
func (DeferUntilV) queueValue()  {}
func (RepeatV) queueValue()      {}
func (TimeoutV) queueValue()     {}
func (SequenceV) queueValue()    {}
func (RetryV) queueValue()       {}
func (AggregateV) queueValue()   {}
func (NoopV) queueValue()        {}

func (EventV) typeTag() string      { return "event" }
func (DataV) typeTag() string       { return "data" }
func (FetchV) typeTag() string      { return "fetch" }
func (MsgV) typeTag() string        { return "msg" }
func (WaitV) typeTag() string       { return "wait" }
func (DeferUntilV) typeTag() string { return "defer_until" }
func (RepeatV) typeTag() string     { return "repeat" }
func (TimeoutV) typeTag() string    { return "timeout" }
func (SequenceV) typeTag() string   { return "sequence" }
func (RetryV) typeTag() string      { return "retry" }
func (AggregateV) typeTag() string  { return "aggregate" }
func (NoopV) typeTag() string       { return "noop" }

func (v EventV) String() string { return fmt.Sprintf("Event(%s)", v.Event) }
func (v DataV) String() string  { return fmt.Sprintf("Data(%s)", v.Data) }
func (v FetchV) String() string { return fmt.Sprintf("Fetch(%s)", v.Fetch) }
func (v MsgV) String() string   { return fmt.Sprintf("Msg(%s)", v.Msg) }
func (v WaitV) String() string  { return fmt.Sprintf("Wait(%s)", v.Wait) }

func (v DeferUntilV) String() string {
	return fmt.Sprintf("DeferUntil(%s, %d)", v.Point, v.Seconds)
}

func (v RepeatV) String() string { return fmt.Sprintf("Repeat(%d, %s)", v.Times, v.Msg) }

func (v TimeoutV) String() string {
	return fmt.Sprintf("Timeout(%d, %s)", v.Deadline, v.Msg)
}

func (v SequenceV) String() string {
	s := "Sequence ["
	for i, m := range v.Queue {
		if i > 0 {
			s += ", "
		}
		s += m.String()
	}
	return s + "]"
}

func (v RetryV) String() string { return fmt.Sprintf("Retry(%d, %s)", v.Remaining, v.Msg) }

func (v AggregateV) String() string {
	queue := "["
	for i, m := range v.Queue {
		if i > 0 {
			queue += ", "
		}
		queue += m.String()
	}
	queue += "]"

	data := "["
	for i, d := range v.Data {
		if i > 0 {
			data += ", "
		}
		data += fmt.Sprintf("%v", d)
	}
	data += "]"

	return fmt.Sprintf("Aggregate(%s -> %s -> %v)", queue, data, v.Receiver)
}

func (NoopV) String() string { return "Noop" }
