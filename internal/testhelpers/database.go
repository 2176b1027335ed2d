package testhelpers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/adapters/postgres"
	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	journalUser     = "journal"
	journalPassword = "journal"
	journalDatabase = "journal"
)

// StartJournalDatabase runs a throwaway Postgres, opens it with the journal
// schema applied and registers teardown on t. Skipped under -short.
func StartJournalDatabase(t *testing.T) *postgres.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("journal database tests need docker")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     journalUser,
				"POSTGRES_PASSWORD": journalPassword,
				"POSTGRES_DB":       journalDatabase,
			},
			// postgres logs readiness once for the init server and once for the real one
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	require.NoError(t, err)

	db, err := postgres.Open(ctx, &config.DatabaseConfig{
		DSN:          fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", journalUser, journalPassword, endpoint, journalDatabase),
		MaxOpenConns: 4,
		AutoMigrate:  true,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

// ResetJournal empties the journal between subtests.
func ResetJournal(t *testing.T, db *postgres.DB) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE transaction_journal")
	require.NoError(t, err)
}
