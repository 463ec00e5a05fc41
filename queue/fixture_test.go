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
	"encoding/json"
)

// testStore is a minimal Store used by unit tests; it wraps a Clock so tests
// can pin now() the way the original source's inline "flatten" test fixture
// (EmptyMsgTypes/Unit) pins behavior without a real chain registry.
type testStore struct{ clock Clock }

func (s testStore) Now() uint64 { return s.clock.Now() }

func newTestStore(now uint64) testStore { return testStore{clock: FixedClock(now)} }

// recordingEvent resolves, synchronously, to a fixed successor.
type recordingEvent struct {
	Name string
	Next Value
}

func (e *recordingEvent) Kind() string            { return "test_recording_event" }
func (e *recordingEvent) String() string          { return "recordingEvent(" + e.Name + ")" }
func (e *recordingEvent) HandleEvent(Store) Value { return e.Next }

// recordingEvent.Next is itself a Value, so it needs to go through the
// envelope codec rather than encoding/json's default struct reflection,
// which has no way to recover an interface field on decode.
func (e *recordingEvent) MarshalJSON() ([]byte, error) {
	next, err := Marshal(e.Next)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Name string          `json:"Name"`
		Next json.RawMessage `json:"Next"`
	}{e.Name, next})
}

func (e *recordingEvent) UnmarshalJSON(data []byte) error {
	var body struct {
		Name string          `json:"Name"`
		Next json.RawMessage `json:"Next"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	next, err := Unmarshal(body.Next)
	if err != nil {
		return err
	}
	e.Name, e.Next = body.Name, next
	return nil
}

// alwaysErrMsg fails every time it is handled, with a configurable
// recoverability, used to exercise Retry unfolding (Property 4 / S2).
type alwaysErrMsg struct {
	Name        string
	Recoverable bool
}

func (m *alwaysErrMsg) Kind() string   { return "test_always_err_msg" }
func (m *alwaysErrMsg) String() string { return "alwaysErrMsg(" + m.Name + ")" }
func (m *alwaysErrMsg) HandleMsg(context.Context, Store) error {
	return NewHandlerError(errTest, m.Recoverable)
}

var errTest = testError("boom")

type testError string

func (e testError) Error() string { return string(e) }

// dataFetch resolves immediately to Data(Value).
type dataFetch struct{ Value string }

func (f *dataFetch) Kind() string   { return "test_data_fetch" }
func (f *dataFetch) String() string { return "dataFetch(" + f.Value + ")" }
func (f *dataFetch) HandleFetch(context.Context, Store) Value {
	return Data(&stringDatum{Value: f.Value})
}

type stringDatum struct{ Value string }

func (d *stringDatum) Kind() string   { return "test_string_datum" }
func (d *stringDatum) String() string { return "stringDatum(" + d.Value + ")" }

// collectingReceiver records the multiset handed to it by an Aggregate.
type collectingReceiver struct{ Collected *[][]Datum }

func (r *collectingReceiver) Kind() string   { return "test_collecting_receiver" }
func (r *collectingReceiver) String() string { return "collectingReceiver" }
func (r *collectingReceiver) HandleAggregate(data []Datum) Value {
	*r.Collected = append(*r.Collected, append([]Datum{}, data...))
	return Noop
}

func init() {
	RegisterEventKind("test_recording_event", func() EventHandler { return &recordingEvent{} })
	RegisterMsgKind("test_always_err_msg", func() MsgHandler { return &alwaysErrMsg{} })
	RegisterFetchKind("test_data_fetch", func() FetchHandler { return &dataFetch{} })
	RegisterDatumKind("test_string_datum", func() Datum { return &stringDatum{} })
	RegisterAggregateKind("test_collecting_receiver", func() AggregateHandler {
		return &collectingReceiver{Collected: &[][]Datum{}}
	})
}
