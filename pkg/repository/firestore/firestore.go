// Package firestore stores the ledger, registry, alerts and reports in
// Cloud Firestore.
//
// Listings filter on DeletedAt and order by CreatedAt, so the database needs
// these composite indexes:
//
//	alerts:  DeletedAt ASC, CreatedAt DESC, Repo ASC, Number ASC
//	alerts:  Repo ASC, DeletedAt ASC, CreatedAt DESC, Number ASC
//	reports: DeletedAt ASC, CreatedAt DESC
//	reports: Owner ASC, Repo ASC, DeletedAt ASC, CreatedAt DESC
package firestore

import (
	"context"
	"errors"
	"math"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"google.golang.org/api/iterator"
)

const (
	collectionWorkflowRun  = "workflow_runs"
	collectionInstallation = "installations"
	collectionRepository   = "repositories"
	collectionAlert        = "alerts"
	collectionReport       = "reports"
)

type Repository struct {
	client *firestore.Client
}

var _ interfaces.Repository = (*Repository)(nil)

// New creates a new Firestore-based repository
func New(ctx context.Context, projectID, databaseID string) (*Repository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Repository{
		client: client,
	}, nil
}

// pageOffset reports false when the offset does not fit the int32 offset of
// a Firestore query. Such a page is past any data.
func pageOffset(page model.Page) (int, bool) {
	offset := page.Offset()
	return offset, offset <= math.MaxInt32
}

func (r *Repository) Close() error {
	return r.client.Close()
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

// toBranchDocID replaces "/" with ":" since Git ref names cannot contain ":".
// The branch name stored in the document is unchanged.
func toBranchDocID(branchName string) string {
	return strings.ReplaceAll(branchName, "/", ":")
}

// getAll decodes every document of the query into T
func getAll[T any](iter *firestore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	items := []*T{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents")
		}

		var item T
		if err := snap.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.V("path", snap.Ref.Path))
		}
		items = append(items, &item)
	}

	return items, nil
}
