package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/safe"
)

const alertColumns = `id, repo, number, severity, rule_id, message, file, line, state, url, tags, created_at, deleted_at`

// ReplaceAlerts soft-deletes the live snapshot of repo and inserts the new
// one in a single transaction
func (r *Repository) ReplaceAlerts(ctx context.Context, repo string, alerts []*model.Alert, at time.Time) error {
	batch, err := repository.PrepareAlerts(repo, alerts, at)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	if _, err := tx.ExecContext(ctx, `
		UPDATE alerts SET deleted_at = $2
		WHERE repo = $1 AND deleted_at IS NULL`, repo, at); err != nil {
		return goerr.Wrap(err, "failed to supersede alerts", goerr.V("repo", repo))
	}

	for _, alert := range batch {
		tags := alert.Tags
		if tags == nil {
			tags = []string{}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO alerts (`+alertColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULL)`,
			alert.ID.String(), alert.Repo, int64(alert.Number), string(alert.Severity),
			alert.RuleID, alert.Message, alert.File, alert.Line, alert.State, alert.URL,
			pq.Array(tags), alert.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return goerr.Wrap(repository.ErrAlreadyExists, "live alert already exists",
					goerr.V("repo", repo),
					goerr.V("number", alert.Number),
				)
			}
			return goerr.Wrap(err, "failed to insert alert", goerr.V("repo", repo), goerr.V("number", alert.Number))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit alerts", goerr.V("repo", repo))
	}
	return nil
}

func scanAlert(row rowScanner) (*model.Alert, error) {
	var (
		alert     model.Alert
		number    int64
		severity  string
		tags      []string
		deletedAt sql.NullTime
	)
	if err := row.Scan(&alert.ID, &alert.Repo, &number, &severity, &alert.RuleID, &alert.Message,
		&alert.File, &alert.Line, &alert.State, &alert.URL, pq.Array(&tags), &alert.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}
	alert.Number = types.AlertNumber(number)
	alert.Severity = types.Severity(severity)
	if len(tags) > 0 {
		alert.Tags = tags
	}
	alert.DeletedAt = timePtr(deletedAt)
	return &alert, nil
}

func (r *Repository) queryAlerts(ctx context.Context, query string, args ...any) ([]*model.Alert, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query alerts")
	}
	defer safe.Close(rows)

	alerts := []*model.Alert{}
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan alert")
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate alerts")
	}
	return alerts, nil
}

func (r *Repository) ListAlerts(ctx context.Context, page model.Page) ([]*model.Alert, error) {
	return r.queryAlerts(ctx, `SELECT `+alertColumns+` FROM alerts
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, repo, number
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
}

func (r *Repository) GetAlert(ctx context.Context, id types.AlertID) (*model.Alert, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM alerts
		WHERE id = $1 AND deleted_at IS NULL`, id.String())
	alert, err := scanAlert(row)
	if err != nil {
		return nil, notFound(err, "alert not found", "alertID", id)
	}
	return alert, nil
}

func (r *Repository) ListRepoAlerts(ctx context.Context, repo string) ([]*model.Alert, error) {
	return r.queryAlerts(ctx, `SELECT `+alertColumns+` FROM alerts
		WHERE repo = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, number`, repo)
}
