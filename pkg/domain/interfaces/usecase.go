package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

type UseCase interface {
	HandleEvent(ctx context.Context, ev model.Event) error

	EnableRepository(ctx context.Context, input *model.EnableRepositoryInput) (*model.EnableRepositoryOutput, error)
	TriggerScan(ctx context.Context, input *model.TriggerScanInput) error
	SyncInstallation(ctx context.Context, installID types.GitHubAppInstallID) (int, error)

	ListInstallations(ctx context.Context) ([]*model.Installation, error)
	ListInstallationRepositories(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.Repository, error)
	ListReports(ctx context.Context, page model.Page) ([]*model.Report, error)
	GetReport(ctx context.Context, id types.ReportID) (*model.Report, error)
	ListRepoReports(ctx context.Context, owner, repo string) ([]*model.Report, error)
	ListAlerts(ctx context.Context, page model.Page) ([]*model.Alert, error)
	GetAlert(ctx context.Context, id types.AlertID) (*model.Alert, error)
	ListRepoAlerts(ctx context.Context, owner, repo string) ([]*model.Alert, error)
}
