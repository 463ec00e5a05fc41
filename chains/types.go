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

// Package chains supplies example, concrete payload kinds and workflow
// constructors over the queue engine: creating a light client, updating one,
// and a two-sided handshake aggregation. These are deliberately thin — actual
// chain I/O (RPC calls, tx signing) is out of scope for this module, per the
// engine's external-collaborator boundary — but they exercise
// every capability interface the queue package defines, and show how a real
// adapter package registers its payload kinds.
package chains

// ClientState is a placeholder for a light-client's on-chain state blob.
// A real adapter would carry the chain-specific consensus state (Tendermint
// header, Ethereum beacon state, ...); here it is reduced to opaque bytes
// plus the height it was fetched at, which is all the example workflows need.
type ClientState struct {
	Height uint64 `json:"height"`
	Proof  []byte `json:"proof"`
}
