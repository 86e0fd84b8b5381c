package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
)

func (r *Repository) PutReport(ctx context.Context, report *model.Report) error {
	if err := repository.ValidateReport(report); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reports {
		if existing.ID == report.ID {
			return goerr.Wrap(repository.ErrAlreadyExists, "report already exists", goerr.V("reportID", report.ID))
		}
	}

	cpy := *report
	r.reports = append(r.reports, &cpy)
	return nil
}

func (r *Repository) liveReports(match func(*model.Report) bool) []*model.Report {
	reports := []*model.Report{}
	for _, report := range r.reports {
		if report.DeletedAt == nil && match(report) {
			cpy := *report
			reports = append(reports, &cpy)
		}
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports
}

func (r *Repository) ListReports(ctx context.Context, page model.Page) ([]*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := r.liveReports(func(*model.Report) bool { return true })
	start, end := page.Slice(len(reports))
	return reports[start:end], nil
}

func (r *Repository) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, report := range r.reports {
		if report.ID == id && report.DeletedAt == nil {
			cpy := *report
			return &cpy, nil
		}
	}
	return nil, goerr.Wrap(repository.ErrNotFound, "report not found", goerr.V("reportID", id))
}

func (r *Repository) ListRepoReports(ctx context.Context, owner, repo string) ([]*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.liveReports(func(report *model.Report) bool {
		return report.Owner == owner && report.Repo == repo
	}), nil
}
