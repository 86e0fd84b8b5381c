package repository

import (
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

// PrepareAlerts returns copies of alerts ready to be stored as the live
// snapshot of repo. Missing IDs are generated and CreatedAt defaults to at.
// Duplicate alert numbers in one batch are rejected.
func PrepareAlerts(repo string, alerts []*model.Alert, at time.Time) ([]*model.Alert, error) {
	if repo == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "repo is empty")
	}

	seen := make(map[types.AlertNumber]struct{}, len(alerts))
	batch := make([]*model.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if _, ok := seen[alert.Number]; ok {
			return nil, goerr.Wrap(ErrInvalidInput, "duplicate alert number in batch",
				goerr.V("repo", repo),
				goerr.V("number", alert.Number),
			)
		}
		seen[alert.Number] = struct{}{}

		cpy := *alert
		cpy.Repo = repo
		cpy.Tags = slices.Clone(alert.Tags)
		cpy.DeletedAt = nil
		if cpy.ID == "" {
			cpy.ID = types.NewAlertID()
		}
		if cpy.CreatedAt.IsZero() {
			cpy.CreatedAt = at
		}
		batch = append(batch, &cpy)
	}

	return batch, nil
}

// AlertLess orders alerts newest first, then by repository and alert number
func AlertLess(a, b *model.Alert) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	if a.Repo != b.Repo {
		return a.Repo < b.Repo
	}
	return a.Number < b.Number
}

func ValidateReport(report *model.Report) error {
	if report.ID == "" {
		return goerr.Wrap(ErrInvalidInput, "report ID is empty")
	}
	if report.Owner == "" || report.Repo == "" {
		return goerr.Wrap(ErrInvalidInput, "report owner or repo is empty", goerr.V("reportID", report.ID))
	}
	return nil
}
