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
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal encodes v as a "@type"/"@value" tagged envelope. Every nested Value (inside
// RepeatV, TimeoutV, SequenceV, RetryV, AggregateV) recurses through the same
// envelope, so the shape is uniform at every depth.
func Marshal(v Value) ([]byte, error) {
	value, err := marshalValueBody(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payloadEnvelope{Type: v.typeTag(), Value: value})
}

func marshalValueBody(v Value) (json.RawMessage, error) {
	switch m := v.(type) {
	case EventV:
		return eventKinds.encode(m.Event)
	case DataV:
		return datumKinds.encode(m.Data)
	case FetchV:
		return fetchKinds.encode(m.Fetch)
	case MsgV:
		return msgKinds.encode(m.Msg)
	case WaitV:
		return waitKinds.encode(m.Wait)
	case DeferUntilV:
		return json.Marshal(struct {
			Point   string `json:"point"`
			Seconds uint64 `json:"seconds"`
		}{m.Point.String(), m.Seconds})
	case RepeatV:
		msg, err := Marshal(m.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Times uint64          `json:"times"`
			Msg   json.RawMessage `json:"msg"`
		}{m.Times, msg})
	case TimeoutV:
		msg, err := Marshal(m.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			TimeoutTimestamp uint64          `json:"timeout_timestamp"`
			Msg              json.RawMessage `json:"msg"`
		}{m.Deadline, msg})
	case SequenceV:
		items := make([]json.RawMessage, len(m.Queue))
		for i, item := range m.Queue {
			raw, err := Marshal(item)
			if err != nil {
				return nil, err
			}
			items[i] = raw
		}
		return json.Marshal(items)
	case RetryV:
		msg, err := Marshal(m.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Remaining uint8           `json:"remaining"`
			Msg       json.RawMessage `json:"msg"`
		}{m.Remaining, msg})
	case AggregateV:
		queue := make([]json.RawMessage, len(m.Queue))
		for i, item := range m.Queue {
			raw, err := Marshal(item)
			if err != nil {
				return nil, err
			}
			queue[i] = raw
		}
		data := make([]json.RawMessage, len(m.Data))
		for i, d := range m.Data {
			raw, err := datumKinds.encode(d)
			if err != nil {
				return nil, err
			}
			data[i] = raw
		}
		receiver, err := aggregateKinds.encode(m.Receiver)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Queue    []json.RawMessage `json:"queue"`
			Data     []json.RawMessage `json:"data"`
			Receiver json.RawMessage   `json:"receiver"`
		}{queue, data, receiver})
	case NoopV:
		return json.Marshal(struct{}{})
	default:
		return nil, fmt.Errorf("lcqueue: unknown Value variant %T", v)
	}
}

// Unmarshal decodes data produced by Marshal back into a Value. Unknown
// top-level fields are rejected, per the wire format's deny_unknown_fields
// requirement.
func Unmarshal(data []byte) (Value, error) {
	var env payloadEnvelope
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("lcqueue: decoding envelope: %w", err)
	}
	return unmarshalBody(env.Type, env.Value)
}

func unmarshalBody(typeTag string, raw json.RawMessage) (Value, error) {
	switch typeTag {
	case "event":
		e, err := eventKinds.decode(raw)
		if err != nil {
			return nil, err
		}
		return EventV{Event: e}, nil
	case "data":
		d, err := datumKinds.decode(raw)
		if err != nil {
			return nil, err
		}
		return DataV{Data: d}, nil
	case "fetch":
		f, err := fetchKinds.decode(raw)
		if err != nil {
			return nil, err
		}
		return FetchV{Fetch: f}, nil
	case "msg":
		m, err := msgKinds.decode(raw)
		if err != nil {
			return nil, err
		}
		return MsgV{Msg: m}, nil
	case "wait":
		w, err := waitKinds.decode(raw)
		if err != nil {
			return nil, err
		}
		return WaitV{Wait: w}, nil
	case "defer_until":
		var body struct {
			Point   string `json:"point"`
			Seconds uint64 `json:"seconds"`
		}
		if err := strictUnmarshal(raw, &body); err != nil {
			return nil, err
		}
		point, err := parseDeferPoint(body.Point)
		if err != nil {
			return nil, err
		}
		return DeferUntilV{Point: point, Seconds: body.Seconds}, nil
	case "repeat":
		var body struct {
			Times uint64          `json:"times"`
			Msg   json.RawMessage `json:"msg"`
		}
		if err := strictUnmarshal(raw, &body); err != nil {
			return nil, err
		}
		msg, err := Unmarshal(body.Msg)
		if err != nil {
			return nil, err
		}
		return RepeatV{Times: body.Times, Msg: msg}, nil
	case "timeout":
		var body struct {
			TimeoutTimestamp uint64          `json:"timeout_timestamp"`
			Msg              json.RawMessage `json:"msg"`
		}
		if err := strictUnmarshal(raw, &body); err != nil {
			return nil, err
		}
		msg, err := Unmarshal(body.Msg)
		if err != nil {
			return nil, err
		}
		return TimeoutV{Deadline: body.TimeoutTimestamp, Msg: msg}, nil
	case "sequence":
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		queue := make([]Value, len(items))
		for i, item := range items {
			v, err := Unmarshal(item)
			if err != nil {
				return nil, err
			}
			queue[i] = v
		}
		return SequenceV{Queue: queue}, nil
	case "retry":
		var body struct {
			Remaining uint8           `json:"remaining"`
			Msg       json.RawMessage `json:"msg"`
		}
		if err := strictUnmarshal(raw, &body); err != nil {
			return nil, err
		}
		msg, err := Unmarshal(body.Msg)
		if err != nil {
			return nil, err
		}
		return RetryV{Remaining: body.Remaining, Msg: msg}, nil
	case "aggregate":
		var body struct {
			Queue    []json.RawMessage `json:"queue"`
			Data     []json.RawMessage `json:"data"`
			Receiver json.RawMessage   `json:"receiver"`
		}
		if err := strictUnmarshal(raw, &body); err != nil {
			return nil, err
		}
		queue := make([]Value, len(body.Queue))
		for i, item := range body.Queue {
			v, err := Unmarshal(item)
			if err != nil {
				return nil, err
			}
			queue[i] = v
		}
		data := make([]Datum, len(body.Data))
		for i, item := range body.Data {
			d, err := datumKinds.decode(item)
			if err != nil {
				return nil, err
			}
			data[i] = d
		}
		receiver, err := aggregateKinds.decode(body.Receiver)
		if err != nil {
			return nil, err
		}
		return AggregateV{Queue: queue, Data: data, Receiver: receiver}, nil
	case "noop":
		return NoopV{}, nil
	default:
		return nil, fmt.Errorf("lcqueue: unknown @type %q", typeTag)
	}
}

func strictUnmarshal(raw json.RawMessage, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func parseDeferPoint(s string) (DeferPoint, error) {
	switch s {
	case "absolute":
		return DeferAbsolute, nil
	case "relative":
		return DeferRelative, nil
	default:
		return 0, fmt.Errorf("lcqueue: unknown defer point %q", s)
	}
}
