package postgres

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
)

func (r *Repository) OpenWorkflowRun(ctx context.Context, run *model.WorkflowRun) error {
	if err := run.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid workflow run", goerr.V("error", err))
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workflow_runs (id, owner, repo, installation_id, release_tag, source_branch, temp_branch, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID.String(), run.Owner, run.Repo, int64(run.InstallID),
		run.ReleaseTag, run.SourceBranch.String(), run.TempBranch.String(), run.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "workflow run already open",
				goerr.V("owner", run.Owner),
				goerr.V("repo", run.Repo),
				goerr.V("tempBranch", run.TempBranch),
			)
		}
		return goerr.Wrap(err, "failed to insert workflow run", goerr.V("id", run.ID))
	}

	return nil
}

func (r *Repository) FindWorkflowRun(ctx context.Context, owner, repo string, tempBranch types.BranchName) (*model.WorkflowRun, error) {
	var (
		run          model.WorkflowRun
		installID    int64
		sourceBranch string
		branch       string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner, repo, installation_id, release_tag, source_branch, temp_branch, created_at
		FROM workflow_runs
		WHERE owner = $1 AND repo = $2 AND temp_branch = $3`,
		owner, repo, tempBranch.String(),
	).Scan(&run.ID, &run.Owner, &run.Repo, &installID, &run.ReleaseTag, &sourceBranch, &branch, &run.CreatedAt)
	if err != nil {
		return nil, notFound(err, "workflow run not found", "tempBranch", tempBranch)
	}

	run.InstallID = types.GitHubAppInstallID(installID)
	run.SourceBranch = types.BranchName(sourceBranch)
	run.TempBranch = types.BranchName(branch)
	return &run, nil
}

func (r *Repository) CloseWorkflowRun(ctx context.Context, id types.WorkflowRunID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workflow_runs WHERE id = $1`, id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete workflow run", goerr.V("id", id))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("id", id))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "workflow run not found", goerr.V("id", id))
	}
	return nil
}
