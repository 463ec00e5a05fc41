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

// Property 3: Marshal/Unmarshal round-trips every Value variant, including
// arbitrarily nested composites.
func TestJSONRoundTrip(t *testing.T) {
	cases := map[string]Value{
		"event":    Event(&recordingEvent{Name: "e1", Next: Noop}),
		"data":     Data(&stringDatum{Value: "d1"}),
		"fetch":    Fetch(&dataFetch{Value: "f1"}),
		"msg":      Msg(&alwaysErrMsg{Name: "m1", Recoverable: true}),
		"defer":    Defer(1234),
		"deferrel": DeferRelative(10),
		"repeat":   Repeat(5, Event(&recordingEvent{Name: "r1", Next: Noop})),
		"timeout":  TimeoutV{Deadline: 999, Msg: Event(&recordingEvent{Name: "t1", Next: Noop})},
		"retry":    Retry(3, Msg(&alwaysErrMsg{Name: "m2", Recoverable: false})),
		"noop":     Noop,
		"aggregate": Aggregate(
			[]Value{Fetch(&dataFetch{Value: "a"}), Fetch(&dataFetch{Value: "b"})},
			nil,
			&collectingReceiver{Collected: &[][]Datum{}},
		),
		"sequence": Seq(
			Event(&recordingEvent{Name: "s1", Next: Noop}),
			Defer(1000),
			Retry(2, Msg(&alwaysErrMsg{Name: "s2", Recoverable: true})),
		),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := Marshal(v)
			require.NoError(t, err)

			got, err := Unmarshal(raw)
			require.NoError(t, err)
			require.Equal(t, v, got)

			// idempotent round-trip
			raw2, err := Marshal(got)
			require.NoError(t, err)
			require.JSONEq(t, string(raw), string(raw2))
		})
	}
}

func TestJSONUnmarshalRejectsUnknownType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"@type":"bogus","@value":{}}`))
	require.Error(t, err)
}

func TestJSONUnmarshalRejectsUnknownFields(t *testing.T) {
	_, err := Unmarshal([]byte(`{"@type":"noop","@value":{},"@extra":1}`))
	require.Error(t, err)
}

func TestJSONEnvelopeShape(t *testing.T) {
	raw, err := Marshal(Event(&recordingEvent{Name: "e", Next: Noop}))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"@type": "event",
		"@value": {
			"@type": "test_recording_event",
			"@value": {"Name": "e", "Next": {"@type": "noop", "@value": {}}}
		}
	}`, string(raw))
}
