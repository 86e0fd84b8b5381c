package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

const TempBranchPrefix = "codeql-"

// TempBranchName derives the scan branch for a release tag (or base branch)
func TempBranchName(tagOrBase string) types.BranchName {
	return types.BranchName(TempBranchPrefix + tagOrBase)
}

// WorkflowRun is a ledger entry correlating a temporary scan branch with the
// release that created it. At most one live entry exists per
// (Owner, Repo, TempBranch).
type WorkflowRun struct {
	ID           types.WorkflowRunID      `json:"id"`
	Owner        string                   `json:"owner"`
	Repo         string                   `json:"repo"`
	InstallID    types.GitHubAppInstallID `json:"installation_id"`
	ReleaseTag   string                   `json:"release_tag,omitempty"`
	SourceBranch types.BranchName         `json:"source_branch"`
	TempBranch   types.BranchName         `json:"temp_branch"`
	CreatedAt    time.Time                `json:"created_at"`
}

func (x *WorkflowRun) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "workflow run ID is empty")
	}
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner or repo is empty", goerr.V("id", x.ID))
	}
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "installation ID is empty", goerr.V("id", x.ID))
	}
	if x.TempBranch == "" || x.SourceBranch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty",
			goerr.V("id", x.ID),
			goerr.V("tempBranch", x.TempBranch),
			goerr.V("sourceBranch", x.SourceBranch),
		)
	}
	return nil
}
