package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Repository) PutReport(ctx context.Context, report *model.Report) error {
	if err := repository.ValidateReport(report); err != nil {
		return err
	}

	if _, err := r.client.Collection(collectionReport).Doc(report.ID.String()).Create(ctx, report); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "report already exists", goerr.V("reportID", report.ID))
		}
		return goerr.Wrap(err, "failed to create report", goerr.V("reportID", report.ID))
	}
	return nil
}

func (r *Repository) ListReports(ctx context.Context, page model.Page) ([]*model.Report, error) {
	offset, ok := pageOffset(page)
	if !ok {
		return []*model.Report{}, nil
	}

	query := r.client.Collection(collectionReport).
		Where("DeletedAt", "==", nil).
		OrderBy("CreatedAt", firestore.Desc).
		Offset(offset).
		Limit(page.Limit)

	return getAll[model.Report](query.Documents(ctx))
}

func (r *Repository) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	snap, err := r.client.Collection(collectionReport).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "report not found", goerr.V("reportID", id))
		}
		return nil, goerr.Wrap(err, "failed to get report", goerr.V("reportID", id))
	}

	var report model.Report
	if err := snap.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("reportID", id))
	}
	if report.DeletedAt != nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "report not found", goerr.V("reportID", id))
	}
	return &report, nil
}

func (r *Repository) ListRepoReports(ctx context.Context, owner, repo string) ([]*model.Report, error) {
	query := r.client.Collection(collectionReport).
		Where("Owner", "==", owner).
		Where("Repo", "==", repo).
		Where("DeletedAt", "==", nil).
		OrderBy("CreatedAt", firestore.Desc)

	return getAll[model.Report](query.Documents(ctx))
}
