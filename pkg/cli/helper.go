package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/cli/config"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"github.com/secmon-lab/codeql-fly/pkg/utils/safe"
)

// newRepository picks PostgreSQL, then Firestore, then the in-memory store.
// The PostgreSQL schema is applied before use. The returned func releases
// the store.
func newRepository(ctx context.Context, database *config.Database, firestore *config.Firestore) (interfaces.Repository, func(), error) {
	if database.Enabled() && firestore.Enabled() {
		return nil, nil, goerr.New("db-dsn and firestore-project-id are exclusive")
	}

	switch {
	case database.Enabled():
		repo, err := database.NewRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		if err := repo.Migrate(ctx); err != nil {
			safe.Close(repo)
			return nil, nil, err
		}
		logging.From(ctx).Info("using PostgreSQL store")
		return repo, func() { safe.Close(repo) }, nil

	case firestore.Enabled():
		repo, err := firestore.NewRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Info("using Firestore store", slog.Any("firestore", firestore))
		return repo, func() { safe.Close(repo) }, nil

	default:
		logging.From(ctx).Warn("no persistent store configured, ledger and reports are kept in memory only")
		return memory.New(), func() {}, nil
	}
}
