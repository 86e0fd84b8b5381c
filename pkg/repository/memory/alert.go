package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
)

func (r *Repository) ReplaceAlerts(ctx context.Context, repo string, alerts []*model.Alert, at time.Time) error {
	batch, err := repository.PrepareAlerts(repo, alerts, at)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, alert := range r.alerts {
		if alert.Repo == repo && alert.DeletedAt == nil {
			deletedAt := at
			alert.DeletedAt = &deletedAt
		}
	}
	r.alerts = append(r.alerts, batch...)
	return nil
}

func (r *Repository) liveAlerts(match func(*model.Alert) bool) []*model.Alert {
	var alerts []*model.Alert
	for _, alert := range r.alerts {
		if alert.DeletedAt == nil && match(alert) {
			alerts = append(alerts, copyAlert(alert))
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return repository.AlertLess(alerts[i], alerts[j])
	})
	return alerts
}

func (r *Repository) ListAlerts(ctx context.Context, page model.Page) ([]*model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := r.liveAlerts(func(*model.Alert) bool { return true })
	start, end := page.Slice(len(alerts))
	return append([]*model.Alert{}, alerts[start:end]...), nil
}

func (r *Repository) GetAlert(ctx context.Context, id types.AlertID) (*model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, alert := range r.alerts {
		if alert.ID == id && alert.DeletedAt == nil {
			return copyAlert(alert), nil
		}
	}
	return nil, goerr.Wrap(repository.ErrNotFound, "alert not found", goerr.V("alertID", id))
}

func (r *Repository) ListRepoAlerts(ctx context.Context, repo string) ([]*model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := r.liveAlerts(func(a *model.Alert) bool { return a.Repo == repo })
	if alerts == nil {
		alerts = []*model.Alert{}
	}
	return alerts, nil
}

func copyAlert(alert *model.Alert) *model.Alert {
	cpy := *alert
	cpy.Tags = slices.Clone(alert.Tags)
	if alert.DeletedAt != nil {
		at := *alert.DeletedAt
		cpy.DeletedAt = &at
	}
	return &cpy
}
