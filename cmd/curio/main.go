// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/curio-house/curio/api"
	"github.com/curio-house/curio/ledger"
	"github.com/curio-house/curio/logdb"
	"github.com/curio-house/curio/lvldb"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script"
	"github.com/curio-house/curio/state"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Curio",
		Usage:     "NFT mint and auction engine",
		Copyright: "2026 The Curio developers",
		Flags: []cli.Flag{
			dataDirFlag,
			genesisFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiTimeoutFlag,
			verbosityFlag,
			memFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()
	initLogger(ctx)
	log := slog.Default().With("pkg", "main")
	defer func() { log.Info("exited") }()

	gene := selectGenesis(ctx)

	var (
		store *lvldb.LevelDB
		logDB *logdb.LogDB
		err   error
	)
	if ctx.Bool(memFlag.Name) {
		if store, err = lvldb.NewMem(); err != nil {
			fatal("open in-memory ledger store:", err)
		}
		if logDB, err = logdb.NewMem(); err != nil {
			fatal("open in-memory log db:", err)
		}
	} else {
		dataDir := makeDataDir(ctx)
		if store, err = lvldb.New(filepath.Join(dataDir, "ledger.db"), lvldb.Options{
			CacheSize:              128,
			OpenFilesCacheCapacity: 64,
		}); err != nil {
			fatal("open ledger store:", err)
		}
		if logDB, err = logdb.New(filepath.Join(dataDir, "logs.db")); err != nil {
			fatal("open log db:", err)
		}
	}
	defer store.Close()
	defer logDB.Close()

	st := state.New()
	if err := gene.Build(st); err != nil {
		fatal("build genesis:", err)
	}
	st.Commit()

	se := script.NewScriptEngine(registry.New())
	// a persisted head overrides the genesis state
	l, err := ledger.New(st, se, logDB, store)
	if err != nil {
		fatal("open ledger:", err)
	}
	log.Info("ledger ready", "network", gene.Name(), "seq", l.Seq())

	handler := api.New(l, logDB, ctx.String(apiCorsFlag.Name))
	timeout := time.Duration(ctx.Int(apiTimeoutFlag.Name)) * time.Millisecond
	srv := &http.Server{
		Handler:      requestBodyLimit(handler),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	listener, err := net.Listen("tcp", ctx.String(apiAddrFlag.Name))
	if err != nil {
		fatal("listen API addr:", err)
	}
	go func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			log.Error("API server stopped", "err", err)
		}
	}()
	log.Info("API started", "addr", listener.Addr())

	<-exitSignal.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
