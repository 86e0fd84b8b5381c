package postgres

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/safe"
)

const reportColumns = `id, owner, repo, branch, tag, path, content, created_at, deleted_at`

func (r *Repository) PutReport(ctx context.Context, report *model.Report) error {
	if err := repository.ValidateReport(report); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (`+reportColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		report.ID.String(), report.Owner, report.Repo, report.Branch.String(), report.Tag,
		report.Path, report.Content, report.CreatedAt, nullTime(report.DeletedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "report already exists", goerr.V("reportID", report.ID))
		}
		return goerr.Wrap(err, "failed to insert report", goerr.V("reportID", report.ID))
	}
	return nil
}

func scanReport(row rowScanner) (*model.Report, error) {
	var (
		report    model.Report
		branch    string
		deletedAt sql.NullTime
	)
	if err := row.Scan(&report.ID, &report.Owner, &report.Repo, &branch, &report.Tag,
		&report.Path, &report.Content, &report.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}
	report.Branch = types.BranchName(branch)
	report.DeletedAt = timePtr(deletedAt)
	return &report, nil
}

func (r *Repository) queryReports(ctx context.Context, query string, args ...any) ([]*model.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query reports")
	}
	defer safe.Close(rows)

	reports := []*model.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan report")
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate reports")
	}
	return reports, nil
}

func (r *Repository) ListReports(ctx context.Context, page model.Page) ([]*model.Report, error) {
	return r.queryReports(ctx, `SELECT `+reportColumns+` FROM reports
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
}

func (r *Repository) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports
		WHERE id = $1 AND deleted_at IS NULL`, id.String())
	report, err := scanReport(row)
	if err != nil {
		return nil, notFound(err, "report not found", "reportID", id)
	}
	return report, nil
}

func (r *Repository) ListRepoReports(ctx context.Context, owner, repo string) ([]*model.Report, error) {
	return r.queryReports(ctx, `SELECT `+reportColumns+` FROM reports
		WHERE owner = $1 AND repo = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC, id`, owner, repo)
}
