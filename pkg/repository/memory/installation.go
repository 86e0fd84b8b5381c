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

func (r *Repository) PutInstallation(ctx context.Context, inst *model.Installation) error {
	if err := inst.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid installation", goerr.V("error", err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := copyInstallation(inst)
	cpy.Repositories = nil
	cpy.RepoIDs = nil
	cpy.DeletedAt = nil
	if existing, ok := r.installations[inst.ID]; ok {
		cpy.CreatedAt = existing.CreatedAt
		cpy.RepoIDs = existing.RepoIDs
	}
	r.installations[inst.ID] = cpy
	return nil
}

// liveInstallation must be called with the lock held
func (r *Repository) liveInstallation(id types.GitHubAppInstallID) (*model.Installation, error) {
	inst, ok := r.installations[id]
	if !ok || inst.DeletedAt != nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "installation not found", goerr.V("installID", id))
	}
	return inst, nil
}

func (r *Repository) GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, err := r.liveInstallation(id)
	if err != nil {
		return nil, err
	}
	return copyInstallation(inst), nil
}

func (r *Repository) DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.liveInstallation(id)
	if err != nil {
		return err
	}
	inst.DeletedAt = &at
	inst.UpdatedAt = at
	return nil
}

func (r *Repository) ListInstallations(ctx context.Context) ([]*model.Installation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var installations []*model.Installation
	for _, inst := range r.installations {
		if inst.DeletedAt == nil {
			installations = append(installations, copyInstallation(inst))
		}
	}

	sort.Slice(installations, func(i, j int) bool {
		if !installations[i].CreatedAt.Equal(installations[j].CreatedAt) {
			return installations[i].CreatedAt.After(installations[j].CreatedAt)
		}
		return installations[i].ID < installations[j].ID
	})
	return installations, nil
}

func (r *Repository) AttachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.liveInstallation(id)
	if err != nil {
		return err
	}
	inst.RepoIDs = appendUnique(inst.RepoIDs, repoIDs...)
	return nil
}

func (r *Repository) DetachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.liveInstallation(id)
	if err != nil {
		return err
	}
	inst.RepoIDs = slices.DeleteFunc(slices.Clone(inst.RepoIDs), func(v types.GitHubRepoID) bool {
		return slices.Contains(repoIDs, v)
	})
	return nil
}

func (r *Repository) ReplaceRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, err := r.liveInstallation(id)
	if err != nil {
		return err
	}
	inst.RepoIDs = appendUnique(nil, repoIDs...)
	return nil
}

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository", goerr.V("error", err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *repo
	cpy.DeletedAt = nil
	if existing, ok := r.repositories[repo.ID]; ok {
		cpy.CreatedAt = existing.CreatedAt
		cpy.HasWorkflow = cpy.HasWorkflow || existing.HasWorkflow
	}
	r.repositories[repo.ID] = &cpy
	return nil
}

func (r *Repository) GetRepository(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, ok := r.repositories[id]
	if !ok || repo.DeletedAt != nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("repoID", id))
	}

	cpy := *repo
	return &cpy, nil
}

func (r *Repository) ListInstallationRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, err := r.liveInstallation(id)
	if err != nil {
		return nil, err
	}

	repos := []*model.Repository{}
	for _, repoID := range inst.RepoIDs {
		repo, ok := r.repositories[repoID]
		if !ok || repo.DeletedAt != nil {
			continue
		}
		cpy := *repo
		repos = append(repos, &cpy)
	}
	return repos, nil
}

func (r *Repository) MarkWorkflowProvisioned(ctx context.Context, owner, name string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, repo := range r.repositories {
		if repo.Owner == owner && repo.Name == name && repo.DeletedAt == nil {
			repo.HasWorkflow = true
			repo.UpdatedAt = at
			return nil
		}
	}

	return goerr.Wrap(repository.ErrNotFound, "repository not found",
		goerr.V("owner", owner),
		goerr.V("name", name),
	)
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

func copyInstallation(inst *model.Installation) *model.Installation {
	if inst == nil {
		return nil
	}
	cpy := *inst
	cpy.RepoIDs = slices.Clone(inst.RepoIDs)
	if inst.DeletedAt != nil {
		at := *inst.DeletedAt
		cpy.DeletedAt = &at
	}
	return &cpy
}
