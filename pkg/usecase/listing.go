package usecase

import (
	"context"

	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

func (x *UseCase) ListInstallations(ctx context.Context) ([]*model.Installation, error) {
	return x.clients.Repository().ListInstallations(ctx)
}

func (x *UseCase) ListInstallationRepositories(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.Repository, error) {
	return x.clients.Repository().ListInstallationRepositories(ctx, installID)
}

func (x *UseCase) ListReports(ctx context.Context, page model.Page) ([]*model.Report, error) {
	return x.clients.Repository().ListReports(ctx, model.NewPage(page.Page, page.Limit))
}

func (x *UseCase) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	return x.clients.Repository().GetReport(ctx, id)
}

func (x *UseCase) ListRepoReports(ctx context.Context, owner, repo string) ([]*model.Report, error) {
	return x.clients.Repository().ListRepoReports(ctx, owner, repo)
}

func (x *UseCase) ListAlerts(ctx context.Context, page model.Page) ([]*model.Alert, error) {
	return x.clients.Repository().ListAlerts(ctx, model.NewPage(page.Page, page.Limit))
}

func (x *UseCase) GetAlert(ctx context.Context, id types.AlertID) (*model.Alert, error) {
	return x.clients.Repository().GetAlert(ctx, id)
}

func (x *UseCase) ListRepoAlerts(ctx context.Context, owner, repo string) ([]*model.Alert, error) {
	return x.clients.Repository().ListRepoAlerts(ctx, model.RepoFullName(owner, repo))
}
