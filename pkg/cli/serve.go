package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/codeql-fly/pkg/cli/config"
	"github.com/secmon-lab/codeql-fly/pkg/controller/server"
	"github.com/secmon-lab/codeql-fly/pkg/infra"
	"github.com/secmon-lab/codeql-fly/pkg/usecase"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		dispatch  config.Dispatch
		database  config.Database
		firestore config.Firestore
		bigQuery  config.BigQuery
		storage   config.Storage
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("CODEQL_FLY_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			dispatch.Flags(),
			database.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Dispatch", &dispatch),
				slog.Any("Database", &database),
				slog.Any("Firestore", &firestore),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Storage", &storage),
				slog.Any("Sentry", &sentry),
			)

			if githubApp.Secret() == "" {
				logging.Default().Warn("github-app-secret is not set, every webhook delivery will be rejected")
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New(dispatch.Options()...)
			if err != nil {
				return err
			}

			repo, closeRepo, err := newRepository(ctx, &database, &firestore)
			if err != nil {
				return err
			}
			defer closeRepo()

			infraOptions := []infra.Option{
				infra.WithGitHubApp(ghApp),
				infra.WithRepository(repo),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			if archive, err := storage.NewArchive(ctx); err != nil {
				return err
			} else if archive != nil {
				infraOptions = append(infraOptions, infra.WithReportArchive(archive))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients)
			s := server.New(uc, server.WithGitHubSecret(githubApp.Secret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// webhook handlers finish their work before answering
				WriteTimeout: 5 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
