package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/postgres"
	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/ports"
	"github.com/DanielPopoola/payment-orchestrator/internal/core/service"
	"github.com/DanielPopoola/payment-orchestrator/internal/orchestration"
	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("GATEWAY_CONFIG_FILE")
	}
	return config.LoadConfigFrom(path)
}

// newTransactionService builds the orchestrator and, when a database is
// configured, the journal behind it. The returned func releases the pool.
func newTransactionService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*service.TransactionService, func(), error) {
	var journal ports.JournalRepository
	closeFn := func() {}

	if cfg.Database != nil {
		db, err := postgres.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		journal = postgres.NewJournalRepository(db)
		closeFn = db.Close
	} else {
		logger.Info("transaction journal disabled, no database configured")
	}

	orchestrator := orchestration.New(orchestration.FromConfig(cfg), logger)
	return service.NewTransactionService(orchestrator, journal, logger), closeFn, nil
}
