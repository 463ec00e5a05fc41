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

// Package config loads the relayer daemon's static configuration: chain
// endpoints keyed by chain id, the engine's worker concurrency, the metrics
// listen address, and logging. Retry backoff and the defer poll grain are
// fixed constants in the queue package and are not configurable here.
package config

import (
	"os"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// ChainEndpoint describes how to reach one chain the Store will register a
// handle for.
type ChainEndpoint struct {
	ChainID  string `toml:"chain_id"`
	Kind     string `toml:"kind"` // "evm_mainnet" | "evm_minimal" | "union" | "wasm_cosmos"
	RPC      string `toml:"rpc"`
	GRPC     string `toml:"grpc,omitempty"`
	SignerID string `toml:"signer_id,omitempty"`
}

// Config is the top-level TOML document shape.
type Config struct {
	Chains []ChainEndpoint `toml:"chains"`

	Engine struct {
		// MaxConcurrentWorkflows bounds how many top-level workflows the run
		// loop steps simultaneously.
		MaxConcurrentWorkflows int `toml:"max_concurrent_workflows"`
	} `toml:"engine"`

	Metrics struct {
		ListenAddr string `toml:"listen_addr"`
	} `toml:"metrics"`

	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file,omitempty"`
	} `toml:"log"`
}

// Default returns a Config populated with the engine's documented defaults,
// suitable as a starting point before applying a loaded file on top.
func Default() *Config {
	cfg := &Config{}
	cfg.Engine.MaxConcurrentWorkflows = 16
	cfg.Metrics.ListenAddr = "127.0.0.1:9090"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads and parses a TOML config file at path, starting from Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: opening %s", path)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "config: decoding %s", path)
	}
	return cfg, nil
}
