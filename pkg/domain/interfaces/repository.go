package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . Repository

// WorkflowLedger tracks in-flight temporary scan branches. Open fails with
// repository.ErrAlreadyExists when a live entry has the same
// (owner, repo, temp branch).
type WorkflowLedger interface {
	OpenWorkflowRun(ctx context.Context, run *model.WorkflowRun) error
	FindWorkflowRun(ctx context.Context, owner, repo string, tempBranch types.BranchName) (*model.WorkflowRun, error)
	CloseWorkflowRun(ctx context.Context, id types.WorkflowRunID) error
}

// InstallationRegistry records onboarded installations and repositories.
// Soft-deleted records are invisible to every read. PutInstallation never
// touches the repository set; the Attach/Detach/Replace methods own it.
type InstallationRegistry interface {
	PutInstallation(ctx context.Context, inst *model.Installation) error
	GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error)
	DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID, at time.Time) error
	ListInstallations(ctx context.Context) ([]*model.Installation, error)

	AttachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error
	DetachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error
	ReplaceRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error

	PutRepository(ctx context.Context, repo *model.Repository) error
	GetRepository(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error)
	ListInstallationRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error)
	MarkWorkflowProvisioned(ctx context.Context, owner, name string, at time.Time) error
}

// AlertStore keeps the alert snapshot of the latest scan per repository
type AlertStore interface {
	ReplaceAlerts(ctx context.Context, repo string, alerts []*model.Alert, at time.Time) error
	ListAlerts(ctx context.Context, page model.Page) ([]*model.Alert, error)
	GetAlert(ctx context.Context, id types.AlertID) (*model.Alert, error)
	ListRepoAlerts(ctx context.Context, repo string) ([]*model.Alert, error)
}

// ReportStore archives rendered reports
type ReportStore interface {
	PutReport(ctx context.Context, report *model.Report) error
	ListReports(ctx context.Context, page model.Page) ([]*model.Report, error)
	GetReport(ctx context.Context, id types.ReportID) (*model.Report, error)
	ListRepoReports(ctx context.Context, owner, repo string) ([]*model.Report, error)
}

type Repository interface {
	WorkflowLedger
	InstallationRegistry
	AlertStore
	ReportStore
}
