package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
)

func installationCreated() model.InstallationCreated {
	return model.InstallationCreated{
		InstallID: 7,
		Account:   model.Account{ID: 100, Login: "acme", Type: "Organization"},
		Repos: []model.RepoRef{
			{ID: 1, Owner: "acme", Name: "widget"},
			{ID: 2, Owner: "acme", Name: "gadget"},
		},
	}
}

func TestHandleInstallationCreated(t *testing.T) {
	t.Run("registers installation and provisions repositories", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		repo := memory.New()
		uc := newUseCase(gh, repo)

		gt.NoError(t, uc.HandleEvent(ctx, installationCreated()))

		inst := gt.R1(repo.GetInstallation(ctx, 7)).NoError(t)
		gt.V(t, inst.Account.Login).Equal("acme")
		gt.V(t, inst.RepoIDs).Equal([]types.GitHubRepoID{1, 2})

		gt.V(t, len(gh.EnsureWorkflowOnDefaultBranchCalls())).Equal(2)

		repos := gt.R1(repo.ListInstallationRepositories(ctx, 7)).NoError(t)
		gt.V(t, len(repos)).Equal(2)
		for _, r := range repos {
			gt.True(t, r.HasWorkflow)
		}
	})

	t.Run("provisioning failure still attaches repository", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		gh.EnsureWorkflowOnDefaultBranchFunc = func(ctx context.Context, owner, repo string, installID types.GitHubAppInstallID) error {
			if repo == "gadget" {
				return errors.New("archived")
			}
			return nil
		}
		repo := memory.New()
		uc := newUseCase(gh, repo)

		gt.NoError(t, uc.HandleEvent(ctx, installationCreated()))

		widget := gt.R1(repo.GetRepository(ctx, 1)).NoError(t)
		gt.True(t, widget.HasWorkflow)
		gadget := gt.R1(repo.GetRepository(ctx, 2)).NoError(t)
		gt.False(t, gadget.HasWorkflow)

		inst := gt.R1(repo.GetInstallation(ctx, 7)).NoError(t)
		gt.V(t, inst.RepoIDs).Equal([]types.GitHubRepoID{1, 2})
	})
}

func TestHandleInstallationRepos(t *testing.T) {
	t.Run("added and removed", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		repo := memory.New()
		uc := newUseCase(gh, repo)

		gt.NoError(t, uc.HandleEvent(ctx, installationCreated()))
		gt.NoError(t, uc.HandleEvent(ctx, model.InstallationReposAdded{
			InstallID: 7,
			Account:   model.Account{Login: "acme"},
			Repos:     []model.RepoRef{{ID: 3, Owner: "acme", Name: "doohickey"}},
		}))
		gt.NoError(t, uc.HandleEvent(ctx, model.InstallationReposRemoved{
			InstallID: 7,
			RepoIDs:   []types.GitHubRepoID{1},
		}))

		inst := gt.R1(repo.GetInstallation(ctx, 7)).NoError(t)
		gt.V(t, inst.RepoIDs).Equal([]types.GitHubRepoID{2, 3})
	})

	t.Run("added revives deleted installation", func(t *testing.T) {
		ctx := testContext()
		repo := memory.New()
		uc := newUseCase(newGitHubMock(), repo)

		gt.NoError(t, uc.HandleEvent(ctx, installationCreated()))
		gt.NoError(t, uc.HandleEvent(ctx, model.InstallationDeleted{InstallID: 7}))
		_, err := repo.GetInstallation(ctx, 7)
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		gt.NoError(t, uc.HandleEvent(ctx, model.InstallationReposAdded{
			InstallID: 7,
			Account:   model.Account{Login: "acme"},
			Repos:     []model.RepoRef{{ID: 3, Owner: "acme", Name: "doohickey"}},
		}))
		gt.R1(repo.GetInstallation(ctx, 7)).NoError(t)
	})
}

func TestHandleInstallationDeleted(t *testing.T) {
	t.Run("soft deletes installation", func(t *testing.T) {
		ctx := testContext()
		repo := memory.New()
		uc := newUseCase(newGitHubMock(), repo)

		gt.NoError(t, uc.HandleEvent(ctx, installationCreated()))
		gt.NoError(t, uc.HandleEvent(ctx, model.InstallationDeleted{InstallID: 7}))

		list := gt.R1(repo.ListInstallations(ctx)).NoError(t)
		gt.V(t, len(list)).Equal(0)
	})

	t.Run("unknown installation succeeds", func(t *testing.T) {
		uc := newUseCase(newGitHubMock(), memory.New())
		gt.NoError(t, uc.HandleEvent(testContext(), model.InstallationDeleted{InstallID: 999}))
	})
}

func TestSyncInstallation(t *testing.T) {
	t.Run("replaces repository set", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		repo := memory.New()
		uc := newUseCase(gh, repo)
		gt.NoError(t, uc.HandleEvent(ctx, installationCreated()))

		gh.ListInstallationReposFunc = func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
			return []*model.GitHubAPIRepository{
				{ID: 2, Owner: "acme", Name: "gadget"},
				{ID: 5, Owner: "acme", Name: "thing"},
			}, nil
		}

		count := gt.R1(uc.SyncInstallation(ctx, 7)).NoError(t)
		gt.V(t, count).Equal(2)

		inst := gt.R1(repo.GetInstallation(ctx, 7)).NoError(t)
		gt.V(t, inst.RepoIDs).Equal([]types.GitHubRepoID{2, 5})
		gt.V(t, inst.Account.Login).Equal("acme")
	})

	t.Run("unknown installation takes owner from repositories", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		gh.ListInstallationReposFunc = func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
			return []*model.GitHubAPIRepository{{ID: 9, Owner: "solo", Name: "tool"}}, nil
		}
		repo := memory.New()
		uc := newUseCase(gh, repo)

		count := gt.R1(uc.SyncInstallation(ctx, 8)).NoError(t)
		gt.V(t, count).Equal(1)

		inst := gt.R1(repo.GetInstallation(ctx, 8)).NoError(t)
		gt.V(t, inst.Account.Login).Equal("solo")
	})

	t.Run("gateway failure", func(t *testing.T) {
		gh := newGitHubMock()
		gh.ListInstallationReposFunc = func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
			return nil, errors.New("unauthorized")
		}
		uc := newUseCase(gh, memory.New())

		_, err := uc.SyncInstallation(testContext(), 7)
		gt.Error(t, err)
	})
}
