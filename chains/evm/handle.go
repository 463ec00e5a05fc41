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

// Package evm supplies the store.ChainHandle implementation for EVM-family
// chains (EvmMainnet and EvmMinimal in chainpair's closed tag set). It holds
// nothing beyond what the example workflows in the chains package need: an
// endpoint and the last height observed for it.
package evm

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ibcrelay/lcqueue/chainpair"
)

// Handle is a registered EVM chain endpoint. Height is a uint256.Int rather
// than a bare uint64: on an EVM chain a block number shares its wire width
// with other consensus-critical integers (difficulty, base fee), and the
// example adapters use the same fixed-width type for all of them rather than
// switching representations at the chain-kind boundary.
type Handle struct {
	ID     chainpair.ChainID
	RPC    string
	Height *uint256.Int
}

// New builds a Handle for id at rpc, with height initialized to zero.
func New(id chainpair.ChainID, rpc string) *Handle {
	return &Handle{ID: id, RPC: rpc, Height: uint256.NewInt(0)}
}

func (h *Handle) ChainID() chainpair.ChainID { return h.ID }
func (h *Handle) Kind() string               { return "evm" }
func (h *Handle) String() string             { return fmt.Sprintf("evm.Handle(%s @ %s)", h.ID, h.RPC) }

// SetHeight records the latest block height observed for this chain.
func (h *Handle) SetHeight(height *uint256.Int) { h.Height = height }
