package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
)

func releaseEvent() model.ReleasePublished {
	return model.ReleasePublished{
		InstallID:    42,
		Owner:        "acme",
		Repo:         "widget",
		Tag:          "v1.0",
		SourceBranch: "main",
	}
}

func TestHandleReleasePublished(t *testing.T) {
	t.Run("opens ledger entry and dispatches", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		repo := memory.New()
		uc := newUseCase(gh, repo)

		gt.NoError(t, uc.HandleEvent(ctx, releaseEvent()))

		gt.V(t, len(gh.CreateTempBranchCalls())).Equal(1)
		gt.V(t, gh.CreateTempBranchCalls()[0].Input.Tag).Equal("v1.0")
		gt.V(t, len(gh.UpsertWorkflowCalls())).Equal(1)
		gt.V(t, gh.UpsertWorkflowCalls()[0].Input.Branch).Equal(types.BranchName("codeql-v1.0"))
		gt.V(t, len(gh.DispatchWorkflowCalls())).Equal(1)
		gt.V(t, gh.DispatchWorkflowCalls()[0].Input.Branch).Equal(types.BranchName("codeql-v1.0"))

		run := gt.R1(repo.FindWorkflowRun(ctx, "acme", "widget", "codeql-v1.0")).NoError(t)
		gt.V(t, run.ReleaseTag).Equal("v1.0")
		gt.V(t, run.SourceBranch).Equal(types.BranchName("main"))
		gt.V(t, run.InstallID).Equal(types.GitHubAppInstallID(42))
		gt.V(t, run.CreatedAt).Equal(testNow)
	})

	t.Run("duplicate delivery does not dispatch twice", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		uc := newUseCase(gh, memory.New())

		gt.NoError(t, uc.HandleEvent(ctx, releaseEvent()))
		gt.NoError(t, uc.HandleEvent(ctx, releaseEvent()))

		gt.V(t, len(gh.DispatchWorkflowCalls())).Equal(1)
	})

	t.Run("dispatch failure closes the ledger entry", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		gh.DispatchWorkflowFunc = func(ctx context.Context, input *interfaces.DispatchWorkflowInput) error {
			return errors.New("dispatch rejected")
		}
		repo := memory.New()
		uc := newUseCase(gh, repo)

		gt.Error(t, uc.HandleEvent(ctx, releaseEvent()))

		_, err := repo.FindWorkflowRun(ctx, "acme", "widget", "codeql-v1.0")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("branch creation failure opens nothing", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		gh.CreateTempBranchFunc = func(ctx context.Context, input *interfaces.CreateTempBranchInput) (types.BranchName, error) {
			return "", errors.New("tag not found")
		}
		repo := memory.New()
		uc := newUseCase(gh, repo)

		gt.Error(t, uc.HandleEvent(ctx, releaseEvent()))
		gt.V(t, len(gh.UpsertWorkflowCalls())).Equal(0)
		gt.V(t, len(gh.DispatchWorkflowCalls())).Equal(0)

		_, err := repo.FindWorkflowRun(ctx, "acme", "widget", "codeql-v1.0")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
