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
	"github.com/secmon-lab/codeql-fly/pkg/utils/errutil"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

// handleReleasePublished prepares a temporary scan branch for the release
// tag and dispatches the CodeQL workflow on it. A redelivered release finds
// the ledger entry already open and stops before dispatching again.
func (x *UseCase) handleReleasePublished(ctx context.Context, ev model.ReleasePublished) error {
	run, err := x.openScanBranch(ctx, ev.InstallID, ev.Owner, ev.Repo, ev.Tag, ev.SourceBranch, "")
	if errors.Is(err, repository.ErrAlreadyExists) {
		logging.From(ctx).Info("scan for release already in flight",
			slog.String("owner", ev.Owner),
			slog.String("repo", ev.Repo),
			slog.String("tag", ev.Tag),
		)
		return nil
	}
	if err != nil {
		return err
	}

	if err := x.clients.GitHubApp().DispatchWorkflow(ctx, &interfaces.DispatchWorkflowInput{
		Owner:     ev.Owner,
		Repo:      ev.Repo,
		Branch:    run.TempBranch,
		InstallID: ev.InstallID,
	}); err != nil {
		if closeErr := x.clients.Repository().CloseWorkflowRun(ctx, run.ID); closeErr != nil {
			errutil.HandleError(ctx, "failed to close workflow run after dispatch failure", closeErr)
		}
		return goerr.Wrap(err, "failed to dispatch scan", goerr.V("tempBranch", run.TempBranch))
	}

	logging.From(ctx).Info("scan dispatched",
		slog.String("owner", ev.Owner),
		slog.String("repo", ev.Repo),
		slog.String("tag", ev.Tag),
		slog.Any("tempBranch", run.TempBranch),
	)
	return nil
}

// openScanBranch creates the temporary branch, writes the workflow to it and
// opens the ledger entry. The entry is returned with the ledger error so a
// caller tolerating duplicates still knows the branch.
func (x *UseCase) openScanBranch(ctx context.Context, installID types.GitHubAppInstallID, owner, repoName, tag string, sourceBranch, baseBranch types.BranchName) (*model.WorkflowRun, error) {
	gh := x.clients.GitHubApp()

	tempBranch, err := gh.CreateTempBranch(ctx, &interfaces.CreateTempBranchInput{
		Owner:      owner,
		Repo:       repoName,
		Tag:        tag,
		BaseBranch: baseBranch,
		InstallID:  installID,
	})
	if err != nil {
		return nil, err
	}

	if err := gh.UpsertWorkflow(ctx, &interfaces.UpsertWorkflowInput{
		Owner:     owner,
		Repo:      repoName,
		Branch:    tempBranch,
		Tag:       tag,
		InstallID: installID,
	}); err != nil {
		return nil, err
	}

	run := &model.WorkflowRun{
		ID:           types.NewWorkflowRunID(),
		Owner:        owner,
		Repo:         repoName,
		InstallID:    installID,
		ReleaseTag:   tag,
		SourceBranch: sourceBranch,
		TempBranch:   tempBranch,
		CreatedAt:    logging.CtxTime(ctx),
	}
	if err := x.clients.Repository().OpenWorkflowRun(ctx, run); err != nil {
		return run, goerr.Wrap(err, "failed to open workflow run",
			goerr.V("owner", owner),
			goerr.V("repo", repoName),
			goerr.V("tempBranch", tempBranch),
		)
	}

	return run, nil
}
