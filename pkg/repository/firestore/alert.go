package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ReplaceAlerts supersedes the live snapshot of repo and writes the new one
// in a single transaction. A transaction is limited to 500 writes, which
// bounds live plus new alerts of one repository.
func (r *Repository) ReplaceAlerts(ctx context.Context, repo string, alerts []*model.Alert, at time.Time) error {
	batch, err := repository.PrepareAlerts(repo, alerts, at)
	if err != nil {
		return err
	}

	collection := r.client.Collection(collectionAlert)
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(collection.Where("Repo", "==", repo).Where("DeletedAt", "==", nil)).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to query live alerts", goerr.V("repo", repo))
		}

		for _, snap := range snaps {
			if err := tx.Update(snap.Ref, []firestore.Update{
				{Path: "DeletedAt", Value: at},
			}); err != nil {
				return goerr.Wrap(err, "failed to supersede alert", goerr.V("path", snap.Ref.Path))
			}
		}

		for _, alert := range batch {
			if err := tx.Create(collection.Doc(alert.ID.String()), alert); err != nil {
				return goerr.Wrap(err, "failed to create alert", goerr.V("id", alert.ID))
			}
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to replace alerts", goerr.V("repo", repo))
	}

	return nil
}

func (r *Repository) ListAlerts(ctx context.Context, page model.Page) ([]*model.Alert, error) {
	offset, ok := pageOffset(page)
	if !ok {
		return []*model.Alert{}, nil
	}

	query := r.client.Collection(collectionAlert).
		Where("DeletedAt", "==", nil).
		OrderBy("CreatedAt", firestore.Desc).
		OrderBy("Repo", firestore.Asc).
		OrderBy("Number", firestore.Asc).
		Offset(offset).
		Limit(page.Limit)

	return getAll[model.Alert](query.Documents(ctx))
}

func (r *Repository) GetAlert(ctx context.Context, id types.AlertID) (*model.Alert, error) {
	snap, err := r.client.Collection(collectionAlert).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "alert not found", goerr.V("alertID", id))
		}
		return nil, goerr.Wrap(err, "failed to get alert", goerr.V("alertID", id))
	}

	var alert model.Alert
	if err := snap.DataTo(&alert); err != nil {
		return nil, goerr.Wrap(err, "failed to decode alert", goerr.V("alertID", id))
	}
	if alert.DeletedAt != nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "alert not found", goerr.V("alertID", id))
	}
	return &alert, nil
}

func (r *Repository) ListRepoAlerts(ctx context.Context, repo string) ([]*model.Alert, error) {
	query := r.client.Collection(collectionAlert).
		Where("Repo", "==", repo).
		Where("DeletedAt", "==", nil).
		OrderBy("CreatedAt", firestore.Desc).
		OrderBy("Number", firestore.Asc)

	return getAll[model.Alert](query.Documents(ctx))
}
