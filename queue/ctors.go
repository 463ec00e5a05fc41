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

// Retry wraps m so that up to count recoverable failures are retried, with a
// fixed backoff between attempts.
func Retry(count uint8, m Value) Value {
	return RetryV{Remaining: count, Msg: m}
}

// Repeat unfolds m times times in sequence. Pass MaxRepeat for an unbounded
// repetition.
func Repeat(times uint64, m Value) Value {
	return RepeatV{Times: times, Msg: m}
}

// Seq builds a FIFO sequence from ms, in flattened normal form.
func Seq(ms ...Value) Value {
	queue := make([]Value, len(ms))
	copy(queue, ms)
	return FlattenSeq(SequenceV{Queue: queue})
}

// Defer builds an absolute deferral until the given unix-second timestamp.
func Defer(timestamp uint64) Value {
	return DeferUntilV{Point: DeferAbsolute, Seconds: timestamp}
}

// DeferRelative builds a deferral that resolves to an absolute one, seconds
// seconds from whenever it is first stepped.
func DeferRelative(seconds uint64) Value {
	return DeferUntilV{Point: DeferRelative, Seconds: seconds}
}

// Fetch wraps a read handler.
func Fetch(f FetchHandler) Value { return FetchV{Fetch: f} }

// Msg wraps a write handler.
func Msg(m MsgHandler) Value { return MsgV{Msg: m} }

// Data wraps a fetched datum. Outside an Aggregate this is a bug (see Step).
func Data(d Datum) Value { return DataV{Data: d} }

// Wait wraps a predicate-wait handler.
func Wait(w WaitHandler) Value { return WaitV{Wait: w} }

// Event wraps a synchronous event handler.
func Event(e EventHandler) Value { return EventV{Event: e} }

// Aggregate builds a fan-in frame over queue, seeding it with any already-known
// data (normally none) and the receiver that will consume the final collection.
func Aggregate(queue []Value, data []Datum, receiver AggregateHandler) Value {
	q := make([]Value, len(queue))
	copy(q, queue)
	d := make([]Datum, len(data))
	copy(d, data)
	return AggregateV{Queue: q, Data: d, Receiver: receiver}
}
