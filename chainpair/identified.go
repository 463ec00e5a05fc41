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

import "fmt"

// ChainID identifies a specific chain instance (e.g. a concrete Cosmos zone
// id), as opposed to Chain, which only tags the chain's *kind*.
type ChainID string

// Id carries a payload P together with its (host, counterparty) witness,
// erased to H and C type parameters. Equality ignores the witness: two Id
// values with the same ChainID and Payload are equal regardless of which
// chain-pair produced them, matching the "equality ignores the witness" rule.
type Id[H Chain, C Chain, P any] struct {
	ChainID ChainID
	Payload P
}

// NewId builds an Id, inferring H and C from the call site's type arguments.
func NewId[H Chain, C Chain, P any](chainID ChainID, payload P) Id[H, C, P] {
	return Id[H, C, P]{ChainID: chainID, Payload: payload}
}

func (id Id[H, C, P]) String() string {
	var h H
	var c C
	return fmt.Sprintf("Id[%s on %s](%s, %v)", h.ChainTag(), c.ChainTag(), id.ChainID, id.Payload)
}
