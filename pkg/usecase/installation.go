package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

func (x *UseCase) handleInstallationCreated(ctx context.Context, ev model.InstallationCreated) error {
	return x.onboardRepositories(ctx, ev.InstallID, ev.Account, ev.Repos)
}

func (x *UseCase) handleInstallationReposAdded(ctx context.Context, ev model.InstallationReposAdded) error {
	return x.onboardRepositories(ctx, ev.InstallID, ev.Account, ev.Repos)
}

// onboardRepositories registers the installation, provisions the workflow on
// each repository and attaches them. A provisioning failure does not keep a
// repository from being attached.
func (x *UseCase) onboardRepositories(ctx context.Context, installID types.GitHubAppInstallID, account model.Account, repos []model.RepoRef) error {
	now := logging.CtxTime(ctx)
	repo := x.clients.Repository()

	if err := repo.PutInstallation(ctx, &model.Installation{
		ID:        installID,
		Account:   account,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return goerr.Wrap(err, "failed to put installation", goerr.V("installID", installID))
	}

	repoIDs := make([]types.GitHubRepoID, 0, len(repos))
	for _, ref := range repos {
		if err := x.provisionRepository(ctx, installID, ref); err != nil {
			return err
		}
		repoIDs = append(repoIDs, ref.ID)
	}

	if err := repo.AttachRepositories(ctx, installID, repoIDs); err != nil {
		return goerr.Wrap(err, "failed to attach repositories", goerr.V("installID", installID))
	}

	logging.From(ctx).Info("installation onboarded",
		slog.Any("installID", installID),
		slog.String("account", account.Login),
		slog.Int("repos", len(repoIDs)),
	)
	return nil
}

func (x *UseCase) provisionRepository(ctx context.Context, installID types.GitHubAppInstallID, ref model.RepoRef) error {
	now := logging.CtxTime(ctx)
	repo := x.clients.Repository()

	if err := repo.PutRepository(ctx, &model.Repository{
		ID:        ref.ID,
		Owner:     ref.Owner,
		Name:      ref.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return goerr.Wrap(err, "failed to put repository", goerr.V("repoID", ref.ID))
	}

	logger := logging.From(ctx).With(
		slog.String("owner", ref.Owner),
		slog.String("repo", ref.Name),
	)

	if err := x.clients.GitHubApp().EnsureWorkflowOnDefaultBranch(ctx, ref.Owner, ref.Name, installID); err != nil {
		logger.Warn("failed to provision workflow", slog.Any("error", err))
		return nil
	}

	if err := repo.MarkWorkflowProvisioned(ctx, ref.Owner, ref.Name, now); err != nil {
		return goerr.Wrap(err, "failed to mark workflow provisioned", goerr.V("repoID", ref.ID))
	}

	logger.Info("workflow provisioned")
	return nil
}

func (x *UseCase) handleInstallationDeleted(ctx context.Context, ev model.InstallationDeleted) error {
	err := x.clients.Repository().DeleteInstallation(ctx, ev.InstallID, logging.CtxTime(ctx))
	if errors.Is(err, repository.ErrNotFound) {
		logging.From(ctx).Info("installation to delete is not registered", slog.Any("installID", ev.InstallID))
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to delete installation", goerr.V("installID", ev.InstallID))
	}

	logging.From(ctx).Info("installation deleted", slog.Any("installID", ev.InstallID))
	return nil
}

func (x *UseCase) handleInstallationReposRemoved(ctx context.Context, ev model.InstallationReposRemoved) error {
	if err := x.clients.Repository().DetachRepositories(ctx, ev.InstallID, ev.RepoIDs); err != nil {
		return goerr.Wrap(err, "failed to detach repositories", goerr.V("installID", ev.InstallID))
	}

	logging.From(ctx).Info("repositories detached",
		slog.Any("installID", ev.InstallID),
		slog.Int("repos", len(ev.RepoIDs)),
	)
	return nil
}

// SyncInstallation replaces the repository set of the installation with what
// the installation API currently lists
func (x *UseCase) SyncInstallation(ctx context.Context, installID types.GitHubAppInstallID) (int, error) {
	if installID == 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "installation ID is empty")
	}

	apiRepos, err := x.clients.GitHubApp().ListInstallationRepos(ctx, installID)
	if err != nil {
		return 0, err
	}

	now := logging.CtxTime(ctx)
	repo := x.clients.Repository()

	account := model.Account{}
	if inst, err := repo.GetInstallation(ctx, installID); err == nil {
		account = inst.Account
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, goerr.Wrap(err, "failed to get installation", goerr.V("installID", installID))
	}
	if account.Login == "" && len(apiRepos) > 0 {
		account.Login = apiRepos[0].Owner
	}
	if account.Login == "" {
		return 0, goerr.Wrap(types.ErrValidationFailed, "installation account is unknown", goerr.V("installID", installID))
	}

	if err := repo.PutInstallation(ctx, &model.Installation{
		ID:        installID,
		Account:   account,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return 0, goerr.Wrap(err, "failed to put installation", goerr.V("installID", installID))
	}

	repoIDs := make([]types.GitHubRepoID, 0, len(apiRepos))
	for _, r := range apiRepos {
		if err := repo.PutRepository(ctx, &model.Repository{
			ID:        r.ID,
			Owner:     r.Owner,
			Name:      r.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return 0, goerr.Wrap(err, "failed to put repository", goerr.V("repoID", r.ID))
		}
		repoIDs = append(repoIDs, r.ID)
	}

	if err := repo.ReplaceRepositories(ctx, installID, repoIDs); err != nil {
		return 0, goerr.Wrap(err, "failed to replace repositories", goerr.V("installID", installID))
	}

	logging.From(ctx).Info("installation synced",
		slog.Any("installID", installID),
		slog.Int("repos", len(repoIDs)),
	)
	return len(repoIDs), nil
}
