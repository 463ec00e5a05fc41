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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `
[[chains]]
chain_id = "union-1"
kind = "union"
rpc = "http://localhost:26657"

[[chains]]
chain_id = "1"
kind = "evm_mainnet"
rpc = "http://localhost:8545"

[engine]
max_concurrent_workflows = 32

[metrics]
listen_addr = "0.0.0.0:9090"

[log]
level = "debug"
`

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lcrelayd.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Chains, 2)
	require.Equal(t, "union-1", cfg.Chains[0].ChainID)
	require.Equal(t, 32, cfg.Engine.MaxConcurrentWorkflows)
	require.Equal(t, "0.0.0.0:9090", cfg.Metrics.ListenAddr)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestDefaultIsSane(t *testing.T) {
	cfg := Default()
	require.Equal(t, 16, cfg.Engine.MaxConcurrentWorkflows)
}
