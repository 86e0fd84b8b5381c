package memory

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

	r.mu.Lock()
	defer r.mu.Unlock()

	key := workflowKey{owner: run.Owner, repo: run.Repo, branch: run.TempBranch}
	if existing, ok := r.workflowRuns[key]; ok {
		return goerr.Wrap(repository.ErrAlreadyExists, "workflow run already open",
			goerr.V("owner", run.Owner),
			goerr.V("repo", run.Repo),
			goerr.V("tempBranch", run.TempBranch),
			goerr.V("existingID", existing.ID),
		)
	}
	for _, existing := range r.workflowRuns {
		if existing.ID == run.ID {
			return goerr.Wrap(repository.ErrAlreadyExists, "workflow run ID already used", goerr.V("id", run.ID))
		}
	}

	cpy := *run
	r.workflowRuns[key] = &cpy
	return nil
}

func (r *Repository) FindWorkflowRun(ctx context.Context, owner, repo string, tempBranch types.BranchName) (*model.WorkflowRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.workflowRuns[workflowKey{owner: owner, repo: repo, branch: tempBranch}]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "workflow run not found",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("tempBranch", tempBranch),
		)
	}

	cpy := *run
	return &cpy, nil
}

func (r *Repository) CloseWorkflowRun(ctx context.Context, id types.WorkflowRunID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, run := range r.workflowRuns {
		if run.ID == id {
			delete(r.workflowRuns, key)
			return nil
		}
	}

	return goerr.Wrap(repository.ErrNotFound, "workflow run not found", goerr.V("id", id))
}
