package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/mock"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra"
	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
	"github.com/secmon-lab/codeql-fly/pkg/usecase"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
}

// newGitHubMock returns a gateway mock whose calls all succeed
func newGitHubMock() *mock.GitHubAppMock {
	return &mock.GitHubAppMock{
		CreateTempBranchFunc: func(ctx context.Context, input *interfaces.CreateTempBranchInput) (types.BranchName, error) {
			if input.Tag != "" {
				return model.TempBranchName(input.Tag), nil
			}
			return model.TempBranchName(input.BaseBranch.String()), nil
		},
		UpsertWorkflowFunc: func(ctx context.Context, input *interfaces.UpsertWorkflowInput) error {
			return nil
		},
		DispatchWorkflowFunc: func(ctx context.Context, input *interfaces.DispatchWorkflowInput) error {
			return nil
		},
		FetchScanAlertsFunc: func(ctx context.Context, input *interfaces.FetchScanAlertsInput) ([]*model.Alert, error) {
			return nil, nil
		},
		DeleteBranchFunc: func(ctx context.Context, input *interfaces.DeleteBranchInput) error {
			return nil
		},
		PushReportFunc: func(ctx context.Context, input *interfaces.PushReportInput) (string, error) {
			return input.Path, nil
		},
		EnsureWorkflowOnDefaultBranchFunc: func(ctx context.Context, owner, repo string, installID types.GitHubAppInstallID) error {
			return nil
		},
		ListInstallationReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
			return nil, nil
		},
	}
}

func newUseCase(gh interfaces.GitHubApp, repo interfaces.Repository, options ...infra.Option) *usecase.UseCase {
	options = append(options, infra.WithGitHubApp(gh), infra.WithRepository(repo))
	return usecase.New(infra.New(options...), usecase.WithPushRetry(3, time.Millisecond))
}

func TestNew(t *testing.T) {
	t.Run("create new usecase with clients", func(t *testing.T) {
		uc := usecase.New(infra.New(
			infra.WithGitHubApp(newGitHubMock()),
			infra.WithRepository(memory.New()),
		))
		gt.V(t, uc).NotEqual(nil)
	})
}

func TestHandleEventValidation(t *testing.T) {
	uc := newUseCase(newGitHubMock(), memory.New())

	t.Run("nil event", func(t *testing.T) {
		gt.Error(t, uc.HandleEvent(testContext(), nil))
	})

	t.Run("invalid event", func(t *testing.T) {
		gt.Error(t, uc.HandleEvent(testContext(), model.ReleasePublished{Owner: "acme", Repo: "widget"}))
	})
}
