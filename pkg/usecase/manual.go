package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

// EnableRepository prepares a scan branch without a release. The branch is
// cut from the tag when given, otherwise from main. It does not dispatch;
// TriggerScan does.
func (x *UseCase) EnableRepository(ctx context.Context, input *model.EnableRepositoryInput) (*model.EnableRepositoryOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sourceBranch := types.BranchName(model.DefaultBaseBranch)
	run, err := x.openScanBranch(ctx, input.InstallID, input.Owner, input.Repo, input.Tag, sourceBranch, sourceBranch)
	switch {
	case errors.Is(err, repository.ErrAlreadyExists):
		logging.From(ctx).Info("scan branch already open", slog.Any("tempBranch", run.TempBranch))
	case err != nil:
		return nil, err
	}

	if err := x.clients.Repository().MarkWorkflowProvisioned(ctx, input.Owner, input.Repo, logging.CtxTime(ctx)); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to mark workflow provisioned",
				goerr.V("owner", input.Owner),
				goerr.V("repo", input.Repo),
			)
		}
		logging.From(ctx).Info("repository is not registered yet",
			slog.String("owner", input.Owner),
			slog.String("repo", input.Repo),
		)
	}

	logging.From(ctx).Info("repository enabled",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("tempBranch", run.TempBranch),
	)
	return &model.EnableRepositoryOutput{TempBranch: run.TempBranch}, nil
}

func (x *UseCase) TriggerScan(ctx context.Context, input *model.TriggerScanInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := x.clients.GitHubApp().DispatchWorkflow(ctx, &interfaces.DispatchWorkflowInput{
		Owner:     input.Owner,
		Repo:      input.Repo,
		Branch:    input.Branch,
		InstallID: input.InstallID,
	}); err != nil {
		return err
	}

	logging.From(ctx).Info("scan triggered",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("branch", input.Branch),
	)
	return nil
}
