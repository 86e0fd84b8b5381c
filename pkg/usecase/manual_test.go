package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
)

func TestEnableRepository(t *testing.T) {
	t.Run("main branch without tag", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		repo := memory.New()
		uc := newUseCase(gh, repo)

		out := gt.R1(uc.EnableRepository(ctx, &model.EnableRepositoryInput{
			Owner:     "acme",
			Repo:      "widget",
			InstallID: 42,
		})).NoError(t)
		gt.V(t, out.TempBranch).Equal(types.BranchName("codeql-main"))

		gt.V(t, gh.CreateTempBranchCalls()[0].Input.BaseBranch).Equal(types.BranchName("main"))
		gt.V(t, len(gh.UpsertWorkflowCalls())).Equal(1)
		gt.V(t, len(gh.DispatchWorkflowCalls())).Equal(0)

		run := gt.R1(repo.FindWorkflowRun(ctx, "acme", "widget", "codeql-main")).NoError(t)
		gt.V(t, run.SourceBranch).Equal(types.BranchName("main"))
	})

	t.Run("with tag and repeated", func(t *testing.T) {
		ctx := testContext()
		gh := newGitHubMock()
		repo := memory.New()
		uc := newUseCase(gh, repo)
		gt.NoError(t, repo.PutRepository(ctx, &model.Repository{ID: 1, Owner: "acme", Name: "widget"}))

		input := &model.EnableRepositoryInput{Owner: "acme", Repo: "widget", InstallID: 42, Tag: "v2.0"}
		out := gt.R1(uc.EnableRepository(ctx, input)).NoError(t)
		gt.V(t, out.TempBranch).Equal(types.BranchName("codeql-v2.0"))

		out = gt.R1(uc.EnableRepository(ctx, input)).NoError(t)
		gt.V(t, out.TempBranch).Equal(types.BranchName("codeql-v2.0"))

		r := gt.R1(repo.GetRepository(ctx, 1)).NoError(t)
		gt.True(t, r.HasWorkflow)
	})

	t.Run("validation error", func(t *testing.T) {
		gh := newGitHubMock()
		uc := newUseCase(gh, memory.New())

		_, err := uc.EnableRepository(testContext(), &model.EnableRepositoryInput{Owner: "acme"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(gh.CreateTempBranchCalls())).Equal(0)
	})
}

func TestTriggerScan(t *testing.T) {
	t.Run("dispatches on branch", func(t *testing.T) {
		gh := newGitHubMock()
		uc := newUseCase(gh, memory.New())

		gt.NoError(t, uc.TriggerScan(testContext(), &model.TriggerScanInput{
			Owner:     "acme",
			Repo:      "widget",
			Branch:    "codeql-main",
			InstallID: 42,
		}))
		gt.V(t, len(gh.DispatchWorkflowCalls())).Equal(1)
		gt.V(t, gh.DispatchWorkflowCalls()[0].Input.Branch).Equal(types.BranchName("codeql-main"))
	})

	t.Run("validation error", func(t *testing.T) {
		gh := newGitHubMock()
		uc := newUseCase(gh, memory.New())

		err := uc.TriggerScan(testContext(), &model.TriggerScanInput{Owner: "acme", Repo: "widget", InstallID: 42})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(gh.DispatchWorkflowCalls())).Equal(0)
	})
}
