package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository/postgres"
	"github.com/urfave/cli/v3"
)

type Database struct {
	dsn types.DatabaseDSN `masq:"secret"`
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-dsn",
			Usage:       "PostgreSQL DSN. Selects the PostgreSQL store when set",
			Category:    "Database",
			Destination: (*string)(&x.dsn),
			Sources:     cli.EnvVars("CODEQL_FLY_DB_DSN"),
		},
	}
}

func (x *Database) Enabled() bool {
	return x.dsn != ""
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.Enabled()),
		slog.Int("dsn.len", len(x.dsn)),
	)
}

func (x *Database) NewRepository(ctx context.Context) (*postgres.Repository, error) {
	return postgres.New(ctx, x.dsn)
}
