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

// FlattenSeq rewrites v into the smallest equivalent form with no Sequence
// directly containing another Sequence, and collapses singleton sequences to
// their sole element. It is idempotent and order-preserving (Properties 1, 2).
func FlattenSeq(v Value) Value {
	msgs := flattenInto(nil, v)
	if len(msgs) == 1 {
		return msgs[0]
	}
	return SequenceV{Queue: msgs}
}

func flattenInto(acc []Value, v Value) []Value {
	seq, ok := v.(SequenceV)
	if !ok {
		return append(acc, v)
	}
	for _, inner := range seq.Queue {
		acc = flattenInto(acc, inner)
	}
	return acc
}
