package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp ReportArchive

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// ReportArchive keeps a copy of every rendered report outside GitHub
type ReportArchive interface {
	PutReport(ctx context.Context, report *model.Report) error
}

// GitHubApp is the only component talking to the GitHub REST API
type GitHubApp interface {
	CreateTempBranch(ctx context.Context, input *CreateTempBranchInput) (types.BranchName, error)
	UpsertWorkflow(ctx context.Context, input *UpsertWorkflowInput) error
	DispatchWorkflow(ctx context.Context, input *DispatchWorkflowInput) error
	FetchScanAlerts(ctx context.Context, input *FetchScanAlertsInput) ([]*model.Alert, error)
	DeleteBranch(ctx context.Context, input *DeleteBranchInput) error
	PushReport(ctx context.Context, input *PushReportInput) (string, error)
	EnsureWorkflowOnDefaultBranch(ctx context.Context, owner, repo string, installID types.GitHubAppInstallID) error
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error)
}

type CreateTempBranchInput struct {
	Owner string
	Repo  string
	// Tag is resolved when set. Otherwise the head of BaseBranch is used.
	Tag        string
	BaseBranch types.BranchName
	InstallID  types.GitHubAppInstallID
}

type UpsertWorkflowInput struct {
	Owner     string
	Repo      string
	Branch    types.BranchName
	Tag       string
	InstallID types.GitHubAppInstallID
}

type DispatchWorkflowInput struct {
	Owner     string
	Repo      string
	Branch    types.BranchName
	InstallID types.GitHubAppInstallID
}

type FetchScanAlertsInput struct {
	Owner string
	Repo  string
	// Ref is a branch name, "refs/heads/<branch>" or "refs/tags/<tag>"
	Ref       string
	InstallID types.GitHubAppInstallID
}

type DeleteBranchInput struct {
	Owner     string
	Repo      string
	Branch    types.BranchName
	InstallID types.GitHubAppInstallID
}

type PushReportInput struct {
	Owner     string
	Repo      string
	Branch    types.BranchName
	Path      string
	Content   string
	Tag       string
	InstallID types.GitHubAppInstallID
}
