package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	clientapi "github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/internal/client/auth"
	"github.com/pwnflow/pwnflow-cli/internal/client/cache"
	"github.com/pwnflow/pwnflow-cli/internal/client/cli"
	"github.com/pwnflow/pwnflow-cli/internal/client/iocli"
	"github.com/pwnflow/pwnflow-cli/internal/client/nodes"
	"github.com/pwnflow/pwnflow-cli/internal/client/storage/boltdb"
	"github.com/pwnflow/pwnflow-cli/internal/editing"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const defaultServerURL = "http://localhost:8000"

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL")
	dbPath := flag.String("db", "pwnflow-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	// Флаг важнее переменной окружения
	server := *serverURL
	if server == "" {
		server = os.Getenv("PWNFLOW_SERVER")
	}
	if server == "" {
		server = defaultServerURL
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// watch живет до Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Пассфраза защищает сохраненный токен сессии
	passphrase := os.Getenv("PWNFLOW_TOKEN_PASSPHRASE")
	if passphrase == "" {
		passphrase = "pwnflow-local"
	}

	apiClient := clientapi.NewClient(server)
	authService := auth.NewService(apiClient, boltStorage, passphrase, logger)
	cacheStore := cache.New()
	editingStore := editing.NewStore(nil, logger)
	nodeService := nodes.NewService(apiClient, cacheStore, editingStore, boltStorage, logger)

	c := cli.New(iocli.NewStdio(), apiClient, authService, nodeService,
		cacheStore, boltStorage, boltStorage, logger)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Pwnflow Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
