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

// Package chainpair implements the typed chain-pair witness (Id[H,C,P]) and
// its runtime-erased, closed-set counterpart (AnyIdentified), so that a proof
// fetched for one (host, counterparty) pairing cannot be silently consumed by
// a handler built for another.
package chainpair

// Chain is a compile-time marker type for one side of a chain pair. Concrete
// chains (EvmMainnet, EvmMinimal, Union, WasmUnion, WasmCosmos) each define a zero-size type
// satisfying this interface purely so the Go type system can distinguish
// Id[EvmMainnet, Union, P] from Id[EvmMinimal, Union, P] at compile time, the
// way the witness (H, C) is a compile-time fact in the source language.
type Chain interface {
	// ChainTag is the stable wire discriminator for this chain marker, used
	// for both @host_chain and @tracking.
	ChainTag() string
}

// EvmMainnet is the host/counterparty marker for an EVM chain running
// mainnet gas/fork parameters.
type EvmMainnet struct{}

func (EvmMainnet) ChainTag() string { return "evm_mainnet" }

// EvmMinimal is the host/counterparty marker for an EVM chain running a
// minimal-consensus test configuration.
type EvmMinimal struct{}

func (EvmMinimal) ChainTag() string { return "evm_minimal" }

// Union is the host/counterparty marker for the Union consensus chain,
// tracked directly (not wrapped in a WASM light-client envelope).
type Union struct{}

func (Union) ChainTag() string { return "union" }

// WasmUnion is the host/counterparty marker for Union tracked through a
// WASM-wrapped light client, as it appears on an EVM or Cosmos counterparty.
type WasmUnion struct{}

func (WasmUnion) ChainTag() string { return "wasm_union" }

// WasmCosmos is the host/counterparty marker for a Cosmos SDK chain tracked
// through a WASM-wrapped light client, as it appears on Union.
type WasmCosmos struct{}

func (WasmCosmos) ChainTag() string { return "wasm_cosmos" }

// PairTag is the closed, wire-stable discriminator for a (host, counterparty)
// chain pair, per the fixed set in the chain-pair table. It is not an open
// enum: adding a pair is a source-level edit to this file and to the dispatch
// table in any.go.
type PairTag string

const (
	EvmMainnetOnUnion PairTag = "EvmMainnetOnUnion"
	UnionOnEvmMainnet PairTag = "UnionOnEvmMainnet"
	EvmMinimalOnUnion PairTag = "EvmMinimalOnUnion"
	UnionOnEvmMinimal PairTag = "UnionOnEvmMinimal"
	CosmosOnUnion     PairTag = "CosmosOnUnion"
	UnionOnCosmos     PairTag = "UnionOnCosmos"
)
