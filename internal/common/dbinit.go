package common

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/trulyinvoice/trulyinvoice/gen/ent"
)

// DBResult bundles an opened Ent client with its cleanup func.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitSQLite opens an in-memory SQLite database and creates the schema.
// Used by the batch binary for credential-free local runs; the server path
// goes through repository.Open against Postgres instead.
func InitSQLite(ctx context.Context, logger *slog.Logger) (*DBResult, error) {
	drv, err := entsql.Open(dialect.SQLite, SQLiteMemoryDSN)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("failed to create sqlite schema", "error", err)
		return nil, err
	}
	logger.Info("in-memory sqlite database ready")
	return &DBResult{
		Client: client,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}
