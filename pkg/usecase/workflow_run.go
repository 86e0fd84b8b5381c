package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra/workflow"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/errutil"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"github.com/secmon-lab/codeql-fly/pkg/utils/retry"
)

const conclusionSuccess = "success"

// handleWorkflowRunCompleted finishes the scan cycle of a temporary branch.
// The ledger entry stays open until the report is committed, so a failed
// commit can be completed by a redelivery.
func (x *UseCase) handleWorkflowRunCompleted(ctx context.Context, ev model.WorkflowRunCompleted) error {
	logger := logging.From(ctx).With(
		slog.String("owner", ev.Owner),
		slog.String("repo", ev.Repo),
		slog.Any("headBranch", ev.HeadBranch),
	)

	if ev.WorkflowName != workflow.Name || ev.Conclusion != conclusionSuccess {
		logger.Debug("ignore workflow run",
			slog.String("workflow", ev.WorkflowName),
			slog.String("conclusion", ev.Conclusion),
		)
		return nil
	}

	repo := x.clients.Repository()
	gh := x.clients.GitHubApp()

	run, err := repo.FindWorkflowRun(ctx, ev.Owner, ev.Repo, ev.HeadBranch)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Info("no open scan for the branch")
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to find workflow run", goerr.V("headBranch", ev.HeadBranch))
	}

	alerts, err := gh.FetchScanAlerts(ctx, &interfaces.FetchScanAlertsInput{
		Owner:     ev.Owner,
		Repo:      ev.Repo,
		Ref:       ev.HeadBranch.String(),
		InstallID: ev.InstallID,
	})
	if err != nil {
		return err
	}

	now := logging.CtxTime(ctx)
	repoName := model.RepoFullName(ev.Owner, ev.Repo)
	if err := repo.ReplaceAlerts(ctx, repoName, alerts, now); err != nil {
		return goerr.Wrap(err, "failed to replace alerts", goerr.V("repo", repoName))
	}

	content := model.RenderReport(alerts, run.SourceBranch, run.ReleaseTag, now)

	var path string
	if err := retry.Do(ctx, func(ctx context.Context) error {
		p, err := gh.PushReport(ctx, &interfaces.PushReportInput{
			Owner:     ev.Owner,
			Repo:      ev.Repo,
			Branch:    run.SourceBranch,
			Path:      model.ReportFilePath(run.ReleaseTag, now),
			Content:   content,
			Tag:       run.ReleaseTag,
			InstallID: ev.InstallID,
		})
		path = p
		return err
	},
		retry.WithRetries(uint64(x.pushAttempts-1)),
		retry.WithBaseDelay(x.pushBaseDelay),
	); err != nil {
		return goerr.Wrap(err, "failed to push report", goerr.V("workflowRunID", run.ID))
	}

	if err := gh.DeleteBranch(ctx, &interfaces.DeleteBranchInput{
		Owner:     ev.Owner,
		Repo:      ev.Repo,
		Branch:    run.TempBranch,
		InstallID: ev.InstallID,
	}); err != nil {
		logger.Warn("failed to delete temporary branch", slog.Any("error", err))
	}

	report := &model.Report{
		ID:        types.NewReportID(),
		Owner:     ev.Owner,
		Repo:      ev.Repo,
		Branch:    run.SourceBranch,
		Tag:       run.ReleaseTag,
		Path:      path,
		Content:   content,
		CreatedAt: now,
	}
	// the ledger entry stays open until the report is stored
	if err := repo.PutReport(ctx, report); err != nil {
		return goerr.Wrap(err, "failed to put report", goerr.V("reportID", report.ID))
	}

	if err := repo.CloseWorkflowRun(ctx, run.ID); err != nil {
		return goerr.Wrap(err, "failed to close workflow run", goerr.V("workflowRunID", run.ID))
	}

	if err := x.exportScanRecord(ctx, run, report, alerts); err != nil {
		errutil.HandleError(ctx, "failed to export scan record", err)
	}
	if err := x.archiveReport(ctx, report); err != nil {
		errutil.HandleError(ctx, "failed to archive report", err)
	}

	logger.Info("scan cycle completed",
		slog.Any("reportID", report.ID),
		slog.String("path", path),
		slog.Int("alerts", len(alerts)),
	)
	return nil
}
