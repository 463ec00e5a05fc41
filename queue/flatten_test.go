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
	"testing"

	"github.com/stretchr/testify/require"
)

// S1: nested sequences flatten to one level, in order.
func TestFlattenSeqScenarioS1(t *testing.T) {
	in := SequenceV{Queue: []Value{
		Defer(1),
		SequenceV{Queue: []Value{Defer(2), Defer(3)}},
		SequenceV{Queue: []Value{Defer(4)}},
		Defer(5),
	}}

	got := FlattenSeq(in)

	want := SequenceV{Queue: []Value{Defer(1), Defer(2), Defer(3), Defer(4), Defer(5)}}
	require.Equal(t, want, got)
}

// Property 1: idempotence.
func TestFlattenSeqIdempotent(t *testing.T) {
	in := SequenceV{Queue: []Value{
		SequenceV{Queue: []Value{Defer(1), SequenceV{Queue: []Value{Defer(2)}}}},
		Defer(3),
	}}

	once := FlattenSeq(in)
	twice := FlattenSeq(once)
	require.Equal(t, once, twice)
}

// Invariant 2: singleton sequences collapse to their sole element.
func TestFlattenSeqSingletonCollapses(t *testing.T) {
	got := FlattenSeq(SequenceV{Queue: []Value{SequenceV{Queue: []Value{Defer(42)}}}})
	require.Equal(t, Defer(42), got)
}

func TestFlattenSeqEmptyStaysEmpty(t *testing.T) {
	got := FlattenSeq(SequenceV{})
	require.Equal(t, SequenceV{Queue: []Value(nil)}, got)
}
