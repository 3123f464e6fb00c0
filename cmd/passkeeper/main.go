package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/passkeeper/internal/audit"
	"github.com/dmitrijs2005/passkeeper/internal/cli"
	"github.com/dmitrijs2005/passkeeper/internal/config"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/vault"
	"github.com/dmitrijs2005/passkeeper/internal/vault/jsonfile"
	"github.com/dmitrijs2005/passkeeper/internal/vault/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run wires configuration, storage, auditing and the front end, executes the
// requested command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, rest, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "opening credential store failed", "path", cfg.StorePath, "backend", cfg.Backend, "error", err)
		return 1
	}
	defer closeRepo()

	var recorder audit.Recorder
	if cfg.AuditLogPath != "" {
		al, err := audit.NewLogger(cfg.AuditLogPath)
		if err != nil {
			logger.Error(ctx, "opening audit log failed", "path", cfg.AuditLogPath, "error", err)
			return 1
		}
		defer al.Close()
		recorder = al
	}

	svc := vault.NewService(repo, logger, recorder)
	app := cli.NewApp(cfg, svc, logger, stdin, stdout)

	if err := app.Run(ctx, rest); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openRepository returns the repository selected by cfg.Backend together
// with its cleanup function.
func openRepository(ctx context.Context, cfg *config.Config) (vault.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		repo, err := sqlite.Open(ctx, cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		return jsonfile.NewRepository(cfg.StorePath), func() {}, nil
	}
}
