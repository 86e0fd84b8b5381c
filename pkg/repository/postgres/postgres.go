// Package postgres stores the ledger, registry, alerts and reports in
// PostgreSQL through lib/pq.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

var _ interfaces.Repository = (*Repository)(nil)

// New opens a connection pool and checks it with a ping
func New(ctx context.Context, dsn types.DatabaseDSN) (*Repository, error) {
	db, err := sql.Open("postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to connect database")
	}

	return &Repository{db: db}, nil
}

// NewWithDB wraps an existing pool
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate applies the schema. All statements are idempotent.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return goerr.Wrap(err, "failed to apply schema")
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func repoIDArray(ids []types.GitHubRepoID) any {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}
	return pq.Array(raw)
}

// notFound maps sql.ErrNoRows to repository.ErrNotFound
func notFound(err error, msg, key string, value any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return goerr.Wrap(repository.ErrNotFound, msg, goerr.V(key, value))
	}
	return goerr.Wrap(err, "failed to query", goerr.V(key, value))
}
