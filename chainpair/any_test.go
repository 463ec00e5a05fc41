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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Property 3 (applied to AnyIdentified) / Invariant 7 (witness coherence):
// round-tripping through the any-type preserves (chain_id, payload) for every
// supported chain pair.
func TestAnyIdentifiedRoundTrip(t *testing.T) {
	cases := []AnyIdentified[string]{
		FromEvmMainnetOnUnion(NewId[WasmUnion, EvmMainnet]("union-1", "payload-a")),
		FromUnionOnEvmMainnet(NewId[EvmMainnet, WasmUnion]("eth-1", "payload-b")),
		FromEvmMinimalOnUnion(NewId[WasmUnion, EvmMinimal]("union-1", "payload-c")),
		FromUnionOnEvmMinimal(NewId[EvmMinimal, WasmUnion]("eth-minimal-1", "payload-d")),
		FromCosmosOnUnion(NewId[Union, WasmCosmos]("union-1", "payload-e")),
		FromUnionOnCosmos(NewId[WasmCosmos, Union]("cosmoshub-4", "payload-f")),
	}

	for _, c := range cases {
		raw, err := json.Marshal(c)
		require.NoError(t, err)

		var got AnyIdentified[string]
		require.NoError(t, json.Unmarshal(raw, &got))

		require.Equal(t, c.Tag(), got.Tag())
		require.Equal(t, c.ChainID(), got.ChainID())
		require.Equal(t, c.Payload(), got.Payload())
	}
}

func TestAnyIdentifiedRejectsCrossedWitness(t *testing.T) {
	raw := []byte(`{"@host_chain":"wasm_union","@tracking":"wasm_union","@value":{"chain_id":"x","payload":"y"}}`)
	var got AnyIdentified[string]
	require.Error(t, json.Unmarshal(raw, &got))
}

// Dispatch routes each tag to its matching arm with the correctly
// reconstructed typed witness.
func TestDispatchExhaustive(t *testing.T) {
	var got PairTag
	d := Dispatchers[string, struct{}]{
		EvmMainnetOnUnion: func(Id[WasmUnion, EvmMainnet, string]) struct{} { got = EvmMainnetOnUnion; return struct{}{} },
		UnionOnEvmMainnet: func(Id[EvmMainnet, WasmUnion, string]) struct{} { got = UnionOnEvmMainnet; return struct{}{} },
		EvmMinimalOnUnion: func(Id[WasmUnion, EvmMinimal, string]) struct{} { got = EvmMinimalOnUnion; return struct{}{} },
		UnionOnEvmMinimal: func(Id[EvmMinimal, WasmUnion, string]) struct{} { got = UnionOnEvmMinimal; return struct{}{} },
		CosmosOnUnion:     func(Id[Union, WasmCosmos, string]) struct{} { got = CosmosOnUnion; return struct{}{} },
		UnionOnCosmos:     func(Id[WasmCosmos, Union, string]) struct{} { got = UnionOnCosmos; return struct{}{} },
	}

	Dispatch(FromCosmosOnUnion(NewId[Union, WasmCosmos]("union-1", "p")), d)
	require.Equal(t, CosmosOnUnion, got)

	Dispatch(FromUnionOnEvmMinimal(NewId[EvmMinimal, WasmUnion]("eth-minimal-1", "p")), d)
	require.Equal(t, UnionOnEvmMinimal, got)

	Dispatch(FromEvmMainnetOnUnion(NewId[WasmUnion, EvmMainnet]("union-1", "p")), d)
	require.Equal(t, EvmMainnetOnUnion, got)

	Dispatch(FromUnionOnEvmMainnet(NewId[EvmMainnet, WasmUnion]("eth-1", "p")), d)
	require.Equal(t, UnionOnEvmMainnet, got)

	Dispatch(FromEvmMinimalOnUnion(NewId[WasmUnion, EvmMinimal]("union-1", "p")), d)
	require.Equal(t, EvmMinimalOnUnion, got)

	Dispatch(FromUnionOnCosmos(NewId[WasmCosmos, Union]("cosmoshub-4", "p")), d)
	require.Equal(t, UnionOnCosmos, got)
}
