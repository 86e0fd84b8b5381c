package firestore

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *Repository) installationDoc(id types.GitHubAppInstallID) *firestore.DocumentRef {
	return r.client.Collection(collectionInstallation).Doc(strconv.FormatInt(int64(id), 10))
}

func (r *Repository) repositoryDoc(id types.GitHubRepoID) *firestore.DocumentRef {
	return r.client.Collection(collectionRepository).Doc(strconv.FormatInt(int64(id), 10))
}

func decodeInstallation(snap *firestore.DocumentSnapshot, err error, id types.GitHubAppInstallID) (*model.Installation, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "installation not found", goerr.V("installID", id))
		}
		return nil, goerr.Wrap(err, "failed to get installation", goerr.V("installID", id))
	}

	var inst model.Installation
	if err := snap.DataTo(&inst); err != nil {
		return nil, goerr.Wrap(err, "failed to decode installation", goerr.V("installID", id))
	}
	if inst.DeletedAt != nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "installation not found", goerr.V("installID", id))
	}
	return &inst, nil
}

func (r *Repository) PutInstallation(ctx context.Context, inst *model.Installation) error {
	if err := inst.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid installation", goerr.V("error", err))
	}

	docRef := r.installationDoc(inst.ID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		cpy := *inst
		cpy.RepoIDs = nil
		cpy.DeletedAt = nil
		cpy.Repositories = nil

		snap, err := tx.Get(docRef)
		switch {
		case err == nil:
			var existing model.Installation
			if err := snap.DataTo(&existing); err != nil {
				return goerr.Wrap(err, "failed to decode installation", goerr.V("installID", inst.ID))
			}
			cpy.CreatedAt = existing.CreatedAt
			cpy.RepoIDs = existing.RepoIDs
		case status.Code(err) != codes.NotFound:
			return goerr.Wrap(err, "failed to get installation", goerr.V("installID", inst.ID))
		}

		return tx.Set(docRef, &cpy)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put installation", goerr.V("installID", inst.ID))
	}
	return nil
}

func (r *Repository) GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error) {
	snap, err := r.installationDoc(id).Get(ctx)
	return decodeInstallation(snap, err, id)
}

func (r *Repository) DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID, at time.Time) error {
	docRef := r.installationDoc(id)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if _, err := decodeInstallation(snap, err, id); err != nil {
			return err
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "DeletedAt", Value: at},
			{Path: "UpdatedAt", Value: at},
		})
	})
}

func (r *Repository) ListInstallations(ctx context.Context) ([]*model.Installation, error) {
	installations, err := getAll[model.Installation](
		r.client.Collection(collectionInstallation).Where("DeletedAt", "==", nil).Documents(ctx))
	if err != nil {
		return nil, err
	}

	sort.Slice(installations, func(i, j int) bool {
		if !installations[i].CreatedAt.Equal(installations[j].CreatedAt) {
			return installations[i].CreatedAt.After(installations[j].CreatedAt)
		}
		return installations[i].ID < installations[j].ID
	})
	return installations, nil
}

// updateRepoIDs rewrites the repository set of a live installation
func (r *Repository) updateRepoIDs(ctx context.Context, id types.GitHubAppInstallID, update func([]types.GitHubRepoID) []types.GitHubRepoID) error {
	docRef := r.installationDoc(id)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		inst, err := decodeInstallation(snap, err, id)
		if err != nil {
			return err
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "RepoIDs", Value: update(inst.RepoIDs)},
		})
	})
}

func appendUnique(dst []types.GitHubRepoID, ids ...types.GitHubRepoID) []types.GitHubRepoID {
	out := slices.Clone(dst)
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func (r *Repository) AttachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	return r.updateRepoIDs(ctx, id, func(current []types.GitHubRepoID) []types.GitHubRepoID {
		return appendUnique(current, repoIDs...)
	})
}

func (r *Repository) DetachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	return r.updateRepoIDs(ctx, id, func(current []types.GitHubRepoID) []types.GitHubRepoID {
		return slices.DeleteFunc(slices.Clone(current), func(v types.GitHubRepoID) bool {
			return slices.Contains(repoIDs, v)
		})
	})
}

func (r *Repository) ReplaceRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	return r.updateRepoIDs(ctx, id, func([]types.GitHubRepoID) []types.GitHubRepoID {
		return appendUnique(nil, repoIDs...)
	})
}

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository", goerr.V("error", err))
	}

	docRef := r.repositoryDoc(repo.ID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		cpy := *repo
		cpy.DeletedAt = nil

		snap, err := tx.Get(docRef)
		switch {
		case err == nil:
			var existing model.Repository
			if err := snap.DataTo(&existing); err != nil {
				return goerr.Wrap(err, "failed to decode repository", goerr.V("repoID", repo.ID))
			}
			cpy.CreatedAt = existing.CreatedAt
			cpy.HasWorkflow = cpy.HasWorkflow || existing.HasWorkflow
		case status.Code(err) != codes.NotFound:
			return goerr.Wrap(err, "failed to get repository", goerr.V("repoID", repo.ID))
		}

		return tx.Set(docRef, &cpy)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put repository", goerr.V("repoID", repo.ID))
	}
	return nil
}

func (r *Repository) GetRepository(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
	snap, err := r.repositoryDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("repoID", id))
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repoID", id))
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository", goerr.V("repoID", id))
	}
	if repo.DeletedAt != nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("repoID", id))
	}
	return &repo, nil
}

func (r *Repository) ListInstallationRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error) {
	inst, err := r.GetInstallation(ctx, id)
	if err != nil {
		return nil, err
	}

	repos := []*model.Repository{}
	if len(inst.RepoIDs) == 0 {
		return repos, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(inst.RepoIDs))
	for _, repoID := range inst.RepoIDs {
		refs = append(refs, r.repositoryDoc(repoID))
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repositories", goerr.V("installID", id))
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var repo model.Repository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository", goerr.V("path", snap.Ref.Path))
		}
		if repo.DeletedAt == nil {
			repos = append(repos, &repo)
		}
	}
	return repos, nil
}

func (r *Repository) MarkWorkflowProvisioned(ctx context.Context, owner, name string, at time.Time) error {
	iter := r.client.Collection(collectionRepository).
		Where("Owner", "==", owner).
		Where("Name", "==", name).
		Documents(ctx)
	snaps, err := iter.GetAll()
	if err != nil {
		return goerr.Wrap(err, "failed to query repository", goerr.V("owner", owner), goerr.V("name", name))
	}

	for _, snap := range snaps {
		var repo model.Repository
		if err := snap.DataTo(&repo); err != nil {
			return goerr.Wrap(err, "failed to decode repository", goerr.V("path", snap.Ref.Path))
		}
		if repo.DeletedAt != nil {
			continue
		}

		if _, err := snap.Ref.Update(ctx, []firestore.Update{
			{Path: "HasWorkflow", Value: true},
			{Path: "UpdatedAt", Value: at},
		}); err != nil {
			return goerr.Wrap(err, "failed to mark workflow provisioned", goerr.V("repoID", repo.ID))
		}
		return nil
	}

	return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("owner", owner), goerr.V("name", name))
}
