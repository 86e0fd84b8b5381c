package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/codeql-fly/pkg/cli/config"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra"
	"github.com/secmon-lab/codeql-fly/pkg/infra/ghapp"
	"github.com/secmon-lab/codeql-fly/pkg/usecase"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// target is the repository a manual command works on. Owner and name fall
// back to the origin remote of the working directory, the installation to
// the one installed on the owner.
type target struct {
	owner     string
	repo      string
	installID types.GitHubAppInstallID
}

func (x *target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("CODEQL_FLY_OWNER"),
			Destination: &x.owner,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name (auto-detect from git if not specified)",
			Sources:     cli.EnvVars("CODEQL_FLY_REPO"),
			Destination: &x.repo,
		},
		&cli.Int64Flag{
			Name:        "installation-id",
			Usage:       "GitHub App installation ID (looked up by owner if not specified)",
			Sources:     cli.EnvVars("CODEQL_FLY_INSTALLATION_ID"),
			Destination: (*int64)(&x.installID),
		},
	}
}

func (x *target) resolve(ctx context.Context, ghApp *ghapp.Client) error {
	if x.owner == "" || x.repo == "" {
		owner, repo, err := detectGitHubRepo(".")
		if err != nil {
			return err
		}
		if x.owner == "" {
			x.owner = owner
		}
		if x.repo == "" {
			x.repo = repo
		}
	}

	if x.installID == 0 {
		id, err := ghApp.GetInstallationIDForOwner(ctx, x.owner)
		if err != nil {
			return err
		}
		x.installID = id
	}

	logging.From(ctx).Info("target repository",
		slog.String("owner", x.owner),
		slog.String("repo", x.repo),
		slog.Any("installID", x.installID),
	)
	return nil
}

// manualUseCase wires the gateway and the selected store for one command run
func manualUseCase(ctx context.Context, githubApp *config.GitHubApp, dispatch *config.Dispatch, database *config.Database, firestore *config.Firestore, tgt *target) (*usecase.UseCase, func(), error) {
	ghApp, err := githubApp.New(dispatch.Options()...)
	if err != nil {
		return nil, nil, err
	}

	if err := tgt.resolve(ctx, ghApp); err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := newRepository(ctx, database, firestore)
	if err != nil {
		return nil, nil, err
	}

	uc := usecase.New(infra.New(
		infra.WithGitHubApp(ghApp),
		infra.WithRepository(repo),
	))
	return uc, closeRepo, nil
}

func enableCommand() *cli.Command {
	var (
		tgt       target
		tag       string
		githubApp config.GitHubApp
		dispatch  config.Dispatch
		database  config.Database
		firestore config.Firestore
	)

	return &cli.Command{
		Name:  "enable",
		Usage: "Create a scan branch with the CodeQL workflow for a tag or main",
		Flags: slice.Flatten(tgt.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "tag",
				Usage:       "Release tag to scan. The head of main is used when empty",
				Destination: &tag,
			},
		}, githubApp.Flags(), dispatch.Flags(), database.Flags(), firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := manualUseCase(ctx, &githubApp, &dispatch, &database, &firestore, &tgt)
			if err != nil {
				return err
			}
			defer closeRepo()

			out, err := uc.EnableRepository(ctx, &model.EnableRepositoryInput{
				Owner:     tgt.owner,
				Repo:      tgt.repo,
				InstallID: tgt.installID,
				Tag:       tag,
			})
			if err != nil {
				return err
			}

			logging.Default().Info("repository enabled", slog.Any("tempBranch", out.TempBranch))
			return nil
		},
	}
}

func triggerCommand() *cli.Command {
	var (
		tgt       target
		branch    string
		githubApp config.GitHubApp
		dispatch  config.Dispatch
		database  config.Database
		firestore config.Firestore
	)

	return &cli.Command{
		Name:  "trigger",
		Usage: "Dispatch the CodeQL workflow on a branch",
		Flags: slice.Flatten(tgt.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "branch",
				Usage:       "Branch carrying the CodeQL workflow",
				Value:       string(model.TempBranchName(model.DefaultBaseBranch)),
				Destination: &branch,
			},
		}, githubApp.Flags(), dispatch.Flags(), database.Flags(), firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeRepo, err := manualUseCase(ctx, &githubApp, &dispatch, &database, &firestore, &tgt)
			if err != nil {
				return err
			}
			defer closeRepo()

			return uc.TriggerScan(ctx, &model.TriggerScanInput{
				Owner:     tgt.owner,
				Repo:      tgt.repo,
				Branch:    types.BranchName(branch),
				InstallID: tgt.installID,
			})
		},
	}
}
