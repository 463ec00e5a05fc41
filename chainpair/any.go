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

package chainpair

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnyIdentified is the runtime-erased, closed sum over the six supported
// chain pairs, carrying a payload of type P. Conversion from a typed Id[H,C,P]
// succeeds only for one of the six enumerated (H, C) pairs; constructing an
// AnyIdentified directly (via the constructors below, never composite
// literals) is the only legal way to produce one, so the Tag/ChainID/Payload
// triple is always internally consistent.
type AnyIdentified[P any] struct {
	tag     PairTag
	chainID ChainID
	payload P
}

// Tag reports which of the six chain pairs this value belongs to.
func (a AnyIdentified[P]) Tag() PairTag { return a.tag }

// ChainID returns the concrete chain id the payload was fetched against.
func (a AnyIdentified[P]) ChainID() ChainID { return a.chainID }

// Payload returns the carried value, with the (H, C) witness erased.
func (a AnyIdentified[P]) Payload() P { return a.payload }

func (a AnyIdentified[P]) String() string {
	return fmt.Sprintf("AnyIdentified[%s](%s, %v)", a.tag, a.chainID, a.payload)
}

func newAny[P any](tag PairTag, chainID ChainID, payload P) AnyIdentified[P] {
	return AnyIdentified[P]{tag: tag, chainID: chainID, payload: payload}
}

// FromEvmMainnetOnUnion lifts a typed Id for the (WasmUnion host, EvmMainnet
// counterparty) pair into the closed sum.
func FromEvmMainnetOnUnion[P any](id Id[WasmUnion, EvmMainnet, P]) AnyIdentified[P] {
	return newAny(EvmMainnetOnUnion, id.ChainID, id.Payload)
}

// FromUnionOnEvmMainnet lifts a typed Id for the (EvmMainnet host, WasmUnion
// counterparty) pair into the closed sum.
func FromUnionOnEvmMainnet[P any](id Id[EvmMainnet, WasmUnion, P]) AnyIdentified[P] {
	return newAny(UnionOnEvmMainnet, id.ChainID, id.Payload)
}

// FromEvmMinimalOnUnion lifts a typed Id for the (WasmUnion host, EvmMinimal
// counterparty) pair into the closed sum.
func FromEvmMinimalOnUnion[P any](id Id[WasmUnion, EvmMinimal, P]) AnyIdentified[P] {
	return newAny(EvmMinimalOnUnion, id.ChainID, id.Payload)
}

// FromUnionOnEvmMinimal lifts a typed Id for the (EvmMinimal host, WasmUnion
// counterparty) pair into the closed sum.
func FromUnionOnEvmMinimal[P any](id Id[EvmMinimal, WasmUnion, P]) AnyIdentified[P] {
	return newAny(UnionOnEvmMinimal, id.ChainID, id.Payload)
}

// FromCosmosOnUnion lifts a typed Id for the (Union host, WasmCosmos
// counterparty) pair into the closed sum.
func FromCosmosOnUnion[P any](id Id[Union, WasmCosmos, P]) AnyIdentified[P] {
	return newAny(CosmosOnUnion, id.ChainID, id.Payload)
}

// FromUnionOnCosmos lifts a typed Id for the (WasmCosmos host, Union
// counterparty) pair into the closed sum.
func FromUnionOnCosmos[P any](id Id[WasmCosmos, Union, P]) AnyIdentified[P] {
	return newAny(UnionOnCosmos, id.ChainID, id.Payload)
}

// pairWitness records the two wire tags for each closed-set pair, used both
// to serialize the witness and to validate it on the way back in.
var pairWitness = map[PairTag]struct{ host, tracking string }{
	EvmMainnetOnUnion: {WasmUnion{}.ChainTag(), EvmMainnet{}.ChainTag()},
	UnionOnEvmMainnet: {EvmMainnet{}.ChainTag(), WasmUnion{}.ChainTag()},
	EvmMinimalOnUnion: {WasmUnion{}.ChainTag(), EvmMinimal{}.ChainTag()},
	UnionOnEvmMinimal: {EvmMinimal{}.ChainTag(), WasmUnion{}.ChainTag()},
	CosmosOnUnion:     {Union{}.ChainTag(), WasmCosmos{}.ChainTag()},
	UnionOnCosmos:     {WasmCosmos{}.ChainTag(), Union{}.ChainTag()},
}

func tagForWitness(host, tracking string) (PairTag, error) {
	for tag, w := range pairWitness {
		if w.host == host && w.tracking == tracking {
			return tag, nil
		}
	}
	return "", fmt.Errorf("chainpair: no chain pair for @host_chain=%q @tracking=%q", host, tracking)
}

type anyIdentifiedWire struct {
	HostChain string          `json:"@host_chain"`
	Tracking  string          `json:"@tracking"`
	Value     json.RawMessage `json:"@value"`
}

// MarshalJSON writes the {"@host_chain","@tracking","@value"} witness shape.
func (a AnyIdentified[P]) MarshalJSON() ([]byte, error) {
	w, ok := pairWitness[a.tag]
	if !ok {
		return nil, fmt.Errorf("chainpair: unknown pair tag %q", a.tag)
	}
	inner, err := json.Marshal(struct {
		ChainID ChainID `json:"chain_id"`
		Payload P       `json:"payload"`
	}{a.chainID, a.payload})
	if err != nil {
		return nil, err
	}
	return json.Marshal(anyIdentifiedWire{HostChain: w.host, Tracking: w.tracking, Value: inner})
}

// UnmarshalJSON reconstructs the witness from the two discriminator tags,
// rejecting any (@host_chain, @tracking) combination outside the closed set.
func (a *AnyIdentified[P]) UnmarshalJSON(data []byte) error {
	var wire anyIdentifiedWire
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wire); err != nil {
		return err
	}

	tag, err := tagForWitness(wire.HostChain, wire.Tracking)
	if err != nil {
		return err
	}

	var inner struct {
		ChainID ChainID `json:"chain_id"`
		Payload P       `json:"payload"`
	}
	innerDec := json.NewDecoder(bytes.NewReader(wire.Value))
	innerDec.DisallowUnknownFields()
	if err := innerDec.Decode(&inner); err != nil {
		return err
	}

	a.tag, a.chainID, a.payload = tag, inner.ChainID, inner.Payload
	return nil
}

// Dispatchers groups one handler per closed-set chain pair, the Go rendering
// of the exhaustive table match in the identified-dispatch design: adding a
// seventh pair means adding a field here and an arm in Dispatch. The compiler
// does not check Dispatch's switch for exhaustiveness; a tag with no arm
// reaches its panicking default.
type Dispatchers[P, R any] struct {
	EvmMainnetOnUnion func(Id[WasmUnion, EvmMainnet, P]) R
	UnionOnEvmMainnet func(Id[EvmMainnet, WasmUnion, P]) R
	EvmMinimalOnUnion func(Id[WasmUnion, EvmMinimal, P]) R
	UnionOnEvmMinimal func(Id[EvmMinimal, WasmUnion, P]) R
	CosmosOnUnion     func(Id[Union, WasmCosmos, P]) R
	UnionOnCosmos     func(Id[WasmCosmos, Union, P]) R
}

// Dispatch routes a to the arm matching its tag, reconstructing the typed Id
// for that arm. Panics if a was not produced by one of the From* constructors
// above or by UnmarshalJSON; from outside this package that is only the zero
// AnyIdentified, whose tag is empty.
func Dispatch[P, R any](a AnyIdentified[P], d Dispatchers[P, R]) R {
	switch a.tag {
	case EvmMainnetOnUnion:
		return d.EvmMainnetOnUnion(Id[WasmUnion, EvmMainnet, P]{ChainID: a.chainID, Payload: a.payload})
	case UnionOnEvmMainnet:
		return d.UnionOnEvmMainnet(Id[EvmMainnet, WasmUnion, P]{ChainID: a.chainID, Payload: a.payload})
	case EvmMinimalOnUnion:
		return d.EvmMinimalOnUnion(Id[WasmUnion, EvmMinimal, P]{ChainID: a.chainID, Payload: a.payload})
	case UnionOnEvmMinimal:
		return d.UnionOnEvmMinimal(Id[EvmMinimal, WasmUnion, P]{ChainID: a.chainID, Payload: a.payload})
	case CosmosOnUnion:
		return d.CosmosOnUnion(Id[Union, WasmCosmos, P]{ChainID: a.chainID, Payload: a.payload})
	case UnionOnCosmos:
		return d.UnionOnCosmos(Id[WasmCosmos, Union, P]{ChainID: a.chainID, Payload: a.payload})
	default:
		panic(fmt.Sprintf("chainpair: unreachable pair tag %q", a.tag))
	}
}
