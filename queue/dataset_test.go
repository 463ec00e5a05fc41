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

import "testing"

func TestAggregateVDataSetDedupesRepeatedDatum(t *testing.T) {
	shared := &stringDatum{Value: "a"}
	agg := AggregateV{Data: []Datum{shared, shared, &stringDatum{Value: "b"}}}

	set := agg.DataSet()
	if set.Cardinality() != 2 {
		t.Fatalf("expected 2 distinct data items, got %d", set.Cardinality())
	}
	if !set.Contains(Datum(shared)) {
		t.Fatalf("expected shared datum to be present in the set")
	}
}

func TestAggregateVDataSetEmpty(t *testing.T) {
	agg := AggregateV{}
	if agg.DataSet().Cardinality() != 0 {
		t.Fatalf("expected empty set for empty Data")
	}
}
