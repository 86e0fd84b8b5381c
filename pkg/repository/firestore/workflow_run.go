package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Repository) workflowRunDoc(owner, repo string, branch types.BranchName) (*firestore.DocumentRef, error) {
	repoID, err := ToFirestoreID(owner, repo)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(collectionWorkflowRun).Doc(repoID + ":" + toBranchDocID(branch.String())), nil
}

// OpenWorkflowRun relies on Create failing for an existing document, which
// makes the uniqueness check atomic
func (r *Repository) OpenWorkflowRun(ctx context.Context, run *model.WorkflowRun) error {
	if err := run.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid workflow run", goerr.V("error", err))
	}

	docRef, err := r.workflowRunDoc(run.Owner, run.Repo, run.TempBranch)
	if err != nil {
		return err
	}

	if _, err := docRef.Create(ctx, run); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "workflow run already open",
				goerr.V("owner", run.Owner),
				goerr.V("repo", run.Repo),
				goerr.V("tempBranch", run.TempBranch),
			)
		}
		return goerr.Wrap(err, "failed to create workflow run", goerr.V("id", run.ID))
	}

	return nil
}

func (r *Repository) FindWorkflowRun(ctx context.Context, owner, repo string, tempBranch types.BranchName) (*model.WorkflowRun, error) {
	docRef, err := r.workflowRunDoc(owner, repo, tempBranch)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "workflow run not found",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("tempBranch", tempBranch),
			)
		}
		return nil, goerr.Wrap(err, "failed to get workflow run", goerr.V("tempBranch", tempBranch))
	}

	var run model.WorkflowRun
	if err := snap.DataTo(&run); err != nil {
		return nil, goerr.Wrap(err, "failed to decode workflow run", goerr.V("tempBranch", tempBranch))
	}

	// "a/b" and "a:b" share a document ID
	if run.TempBranch != tempBranch {
		return nil, goerr.Wrap(repository.ErrNotFound, "workflow run not found",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("tempBranch", tempBranch),
		)
	}

	return &run, nil
}

func (r *Repository) CloseWorkflowRun(ctx context.Context, id types.WorkflowRunID) error {
	iter := r.client.Collection(collectionWorkflowRun).Where("ID", "==", id.String()).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return goerr.Wrap(repository.ErrNotFound, "workflow run not found", goerr.V("id", id))
	}
	if err != nil {
		return goerr.Wrap(err, "failed to find workflow run", goerr.V("id", id))
	}

	if _, err := snap.Ref.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete workflow run", goerr.V("id", id))
	}
	return nil
}
