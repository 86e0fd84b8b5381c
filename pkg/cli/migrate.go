package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/cli/config"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"github.com/secmon-lab/codeql-fly/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the PostgreSQL schema and exit",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !database.Enabled() {
				return goerr.New("db-dsn is required")
			}

			repo, err := database.NewRepository(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(repo)

			if err := repo.Migrate(ctx); err != nil {
				return err
			}

			logging.Default().Info("schema applied")
			return nil
		},
	}
}
