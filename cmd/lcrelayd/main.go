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

// lcrelayd is the example daemon that wires the engine to a concrete store,
// run loop, and metrics endpoint. Concrete chain I/O is out of scope (per the
// engine's external-collaborator boundary); this binary only shows how a
// real operator would assemble the pieces the rest of this module exports.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ibcrelay/lcqueue/chainpair"
	"github.com/ibcrelay/lcqueue/chains"
	"github.com/ibcrelay/lcqueue/chains/evm"
	"github.com/ibcrelay/lcqueue/config"
	"github.com/ibcrelay/lcqueue/internal/rlog"
	"github.com/ibcrelay/lcqueue/metrics"
	"github.com/ibcrelay/lcqueue/queue"
	"github.com/ibcrelay/lcqueue/runloop"
	"github.com/ibcrelay/lcqueue/store"
)

var configFlag = &cli.StringFlag{
	Name:  "config",
	Value: "lcrelayd.toml",
	Usage: "path to the relayer daemon's TOML configuration",
}

func main() {
	app := &cli.App{
		Name:  "lcrelayd",
		Usage: "relays light-client updates and handshakes between registered chains",
		Flags: []cli.Flag{configFlag},
		Commands: []*cli.Command{
			runCommand,
			validateConfigCommand,
		},
		Action: func(c *cli.Context) error { return runDaemon(c.Context, c.String(configFlag.Name)) },
	}
	if err := app.Run(os.Args); err != nil {
		rlog.Crit("lcrelayd exited with error", "err", err)
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "start the relayer daemon",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		return runDaemon(c.Context, c.String(configFlag.Name))
	},
}

var validateConfigCommand = &cli.Command{
	Name:  "validate-config",
	Usage: "load and validate the TOML configuration without starting anything",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load(c.String(configFlag.Name))
		if err != nil {
			return err
		}
		fmt.Printf("config OK: %d chain(s), %d max concurrent workflows\n", len(cfg.Chains), cfg.Engine.MaxConcurrentWorkflows)
		return nil
	},
}

func runDaemon(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	configureLogging(cfg)

	st, err := store.New(queue.SystemClock{}, 64<<20, uint64(16*len(cfg.Chains)+16))
	if err != nil {
		return err
	}
	registerChains(st, cfg.Chains)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	maxConcurrent := int64(cfg.Engine.MaxConcurrentWorkflows)
	if maxConcurrent <= 0 {
		maxConcurrent = 16
	}
	runner := runloop.New(st, queue.SystemClock{}, runloop.NewMemoryPersistence(), maxConcurrent, m)
	defer runner.Close()

	terminated := make(chan runloop.WorkflowTerminated, 64)
	sub := runner.SubscribeTerminated(terminated)
	defer sub.Unsubscribe()
	go logTerminations(terminated)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	srv := &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: metrics.Handler(reg)}
	g.Go(func() error {
		rlog.Info("metrics endpoint listening", "addr", cfg.Metrics.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	enqueueConfiguredWorkflows(gctx, g, runner, cfg.Chains)

	<-gctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	return g.Wait()
}

func configureLogging(cfg *config.Config) {
	level := rlog.LvlInfo
	switch cfg.Log.Level {
	case "debug":
		level = rlog.LvlDebug
	case "warn":
		level = rlog.LvlWarn
	case "error":
		level = rlog.LvlError
	case "crit":
		level = rlog.LvlCrit
	}
	if cfg.Log.File != "" {
		rlog.SetRoot(rlog.New(rlog.NewFileHandler(cfg.Log.File, 100), level))
		return
	}
	rlog.SetRoot(rlog.New(rlog.NewTerminalHandler(os.Stderr), level))
}

// registerChains builds a store.ChainHandle for every configured endpoint
// this binary knows how to adapt. Only the EVM family has a concrete adapter
// in this module (chains/evm); other configured kinds are logged and
// skipped, since wiring a Cosmos or Union client is out of scope (§1).
func registerChains(st *store.Store, endpoints []config.ChainEndpoint) {
	for _, ep := range endpoints {
		id := chainpair.ChainID(ep.ChainID)
		switch ep.Kind {
		case "evm_mainnet", "evm_minimal":
			st.Register(evm.New(id, ep.RPC))
			rlog.Info("registered chain", "chain", id, "kind", ep.Kind)
		default:
			rlog.Warn("no concrete adapter for configured chain kind, skipping registration", "chain", id, "kind", ep.Kind)
		}
	}
}

// enqueueConfiguredWorkflows kicks off a handshake between the first two
// configured chains as a startup example; a real deployment would instead
// enqueue workflows driven by observed on-chain events (§1's Event variant).
func enqueueConfiguredWorkflows(ctx context.Context, g *errgroup.Group, runner *runloop.Runner, endpoints []config.ChainEndpoint) {
	if len(endpoints) < 2 {
		return
	}
	a := chainpair.ChainID(endpoints[0].ChainID)
	b := chainpair.ChainID(endpoints[1].ChainID)
	if _, err := runner.Enqueue(ctx, g, chains.NewHandshakeWorkflow(a, b)); err != nil {
		rlog.Error("failed to enqueue startup handshake", "a", a, "b", b, "err", err)
	}
}

func logTerminations(ch <-chan runloop.WorkflowTerminated) {
	for ev := range ch {
		if ev.Err != nil {
			rlog.Error("workflow terminated", "id", ev.ID, "cause", ev.Cause, "err", ev.Err)
			continue
		}
		rlog.Info("workflow terminated", "id", ev.ID, "cause", ev.Cause)
	}
}
