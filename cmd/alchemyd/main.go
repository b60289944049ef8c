package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/suparena/alchemy"
	"github.com/suparena/alchemy/config"
	"github.com/suparena/alchemy/datastore/arango"
	"github.com/suparena/alchemy/metadata"
	"github.com/suparena/alchemy/server"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := alchemy.GetVersionInfo()
		fmt.Printf("Alchemy alchemyd version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		logger.Error("alchemyd exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schema, err := metadata.LoadFile(cfg.MetadataPath)
	if err != nil {
		return fmt.Errorf("failed to load entity metadata: %w", err)
	}

	store, err := arango.New(ctx, arango.Config{
		Endpoints: cfg.Endpoints,
		Database:  cfg.Database,
		Username:  cfg.Username,
		Password:  cfg.Password,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}

	if err := store.EnsureCollections(ctx, schema.Collections()); err != nil {
		return fmt.Errorf("failed to provision collections: %w", err)
	}

	engine := alchemy.New(store, alchemy.WithLogger(logger))
	engine.RegisterSchema(schema)

	srv := server.New(engine, cfg.BindAddress, logger)
	return srv.ListenAndServe(ctx)
}
