package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/safe"
)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *Repository) PutInstallation(ctx context.Context, inst *model.Installation) error {
	if err := inst.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid installation", goerr.V("error", err))
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO installations (id, account_id, account_login, account_type, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL)
		ON CONFLICT (id) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			account_login = EXCLUDED.account_login,
			account_type = EXCLUDED.account_type,
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL`,
		int64(inst.ID), int64(inst.Account.ID), inst.Account.Login, inst.Account.Type, inst.CreatedAt, inst.UpdatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert installation", goerr.V("installID", inst.ID))
	}
	return nil
}

func installationRepoIDs(ctx context.Context, q queryer, id types.GitHubAppInstallID) ([]types.GitHubRepoID, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT repository_id FROM installation_repositories
		WHERE installation_id = $1 ORDER BY position`, int64(id))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query installation repositories", goerr.V("installID", id))
	}
	defer safe.Close(rows)

	var ids []types.GitHubRepoID
	for rows.Next() {
		var repoID int64
		if err := rows.Scan(&repoID); err != nil {
			return nil, goerr.Wrap(err, "failed to scan repository id")
		}
		ids = append(ids, types.GitHubRepoID(repoID))
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate installation repositories")
	}
	return ids, nil
}

const installationColumns = `id, account_id, account_login, account_type, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstallation(row rowScanner) (*model.Installation, error) {
	var (
		inst      model.Installation
		id        int64
		accountID int64
	)
	if err := row.Scan(&id, &accountID, &inst.Account.Login, &inst.Account.Type, &inst.CreatedAt, &inst.UpdatedAt); err != nil {
		return nil, err
	}
	inst.ID = types.GitHubAppInstallID(id)
	inst.Account.ID = types.GitHubAccountID(accountID)
	return &inst, nil
}

func (r *Repository) GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+installationColumns+`
		FROM installations WHERE id = $1 AND deleted_at IS NULL`, int64(id))
	inst, err := scanInstallation(row)
	if err != nil {
		return nil, notFound(err, "installation not found", "installID", id)
	}

	if inst.RepoIDs, err = installationRepoIDs(ctx, r.db, id); err != nil {
		return nil, err
	}
	return inst, nil
}

func (r *Repository) DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE installations SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL`, int64(id), at)
	if err != nil {
		return goerr.Wrap(err, "failed to delete installation", goerr.V("installID", id))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("installID", id))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "installation not found", goerr.V("installID", id))
	}
	return nil
}

func (r *Repository) ListInstallations(ctx context.Context) ([]*model.Installation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+installationColumns+`
		FROM installations WHERE deleted_at IS NULL ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list installations")
	}
	defer safe.Close(rows)

	var installations []*model.Installation
	for rows.Next() {
		inst, err := scanInstallation(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan installation")
		}
		installations = append(installations, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate installations")
	}

	for _, inst := range installations {
		if inst.RepoIDs, err = installationRepoIDs(ctx, r.db, inst.ID); err != nil {
			return nil, err
		}
	}
	return installations, nil
}

// lockLiveInstallation fails with ErrNotFound unless the installation is live
// and locks its row until the transaction ends
func lockLiveInstallation(ctx context.Context, tx *sql.Tx, id types.GitHubAppInstallID) error {
	var found int64
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM installations WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, int64(id)).Scan(&found)
	if err != nil {
		return notFound(err, "installation not found", "installID", id)
	}
	return nil
}

func (r *Repository) withInstallationTx(ctx context.Context, id types.GitHubAppInstallID, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	if err := lockLiveInstallation(ctx, tx, id); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit transaction", goerr.V("installID", id))
	}
	return nil
}

func appendRepositories(ctx context.Context, tx *sql.Tx, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	var position int64
	if err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), 0) FROM installation_repositories
		WHERE installation_id = $1`, int64(id)).Scan(&position); err != nil {
		return goerr.Wrap(err, "failed to get last position", goerr.V("installID", id))
	}

	for _, repoID := range repoIDs {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO installation_repositories (installation_id, repository_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (installation_id, repository_id) DO NOTHING`,
			int64(id), int64(repoID), position+1)
		if err != nil {
			return goerr.Wrap(err, "failed to attach repository", goerr.V("installID", id), goerr.V("repoID", repoID))
		}
		if n, _ := result.RowsAffected(); n > 0 {
			position++
		}
	}
	return nil
}

func (r *Repository) AttachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	return r.withInstallationTx(ctx, id, func(tx *sql.Tx) error {
		return appendRepositories(ctx, tx, id, repoIDs)
	})
}

func (r *Repository) DetachRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	return r.withInstallationTx(ctx, id, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM installation_repositories
			WHERE installation_id = $1 AND repository_id = ANY($2)`,
			int64(id), repoIDArray(repoIDs)); err != nil {
			return goerr.Wrap(err, "failed to detach repositories", goerr.V("installID", id))
		}
		return nil
	})
}

func (r *Repository) ReplaceRepositories(ctx context.Context, id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) error {
	return r.withInstallationTx(ctx, id, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM installation_repositories WHERE installation_id = $1`, int64(id)); err != nil {
			return goerr.Wrap(err, "failed to clear repositories", goerr.V("installID", id))
		}
		return appendRepositories(ctx, tx, id, repoIDs)
	})
}

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository", goerr.V("error", err))
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO repositories (id, owner, name, has_workflow, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL)
		ON CONFLICT (id) DO UPDATE SET
			owner = EXCLUDED.owner,
			name = EXCLUDED.name,
			has_workflow = repositories.has_workflow OR EXCLUDED.has_workflow,
			updated_at = EXCLUDED.updated_at,
			deleted_at = NULL`,
		int64(repo.ID), repo.Owner, repo.Name, repo.HasWorkflow, repo.CreatedAt, repo.UpdatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert repository", goerr.V("repoID", repo.ID))
	}
	return nil
}

const repositoryColumns = `id, owner, name, has_workflow, created_at, updated_at`

func scanRepository(row rowScanner) (*model.Repository, error) {
	var (
		repo model.Repository
		id   int64
	)
	if err := row.Scan(&id, &repo.Owner, &repo.Name, &repo.HasWorkflow, &repo.CreatedAt, &repo.UpdatedAt); err != nil {
		return nil, err
	}
	repo.ID = types.GitHubRepoID(id)
	return &repo, nil
}

func (r *Repository) GetRepository(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+repositoryColumns+`
		FROM repositories WHERE id = $1 AND deleted_at IS NULL`, int64(id))
	repo, err := scanRepository(row)
	if err != nil {
		return nil, notFound(err, "repository not found", "repoID", id)
	}
	return repo, nil
}

func (r *Repository) ListInstallationRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error) {
	var live int64
	if err := r.db.QueryRowContext(ctx, `
		SELECT id FROM installations WHERE id = $1 AND deleted_at IS NULL`, int64(id)).Scan(&live); err != nil {
		return nil, notFound(err, "installation not found", "installID", id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.owner, r.name, r.has_workflow, r.created_at, r.updated_at
		FROM installation_repositories ir
		JOIN repositories r ON r.id = ir.repository_id
		WHERE ir.installation_id = $1 AND r.deleted_at IS NULL
		ORDER BY ir.position`, int64(id))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list installation repositories", goerr.V("installID", id))
	}
	defer safe.Close(rows)

	repos := []*model.Repository{}
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan repository")
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate repositories")
	}
	return repos, nil
}

func (r *Repository) MarkWorkflowProvisioned(ctx context.Context, owner, name string, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE repositories SET has_workflow = TRUE, updated_at = $3
		WHERE owner = $1 AND name = $2 AND deleted_at IS NULL`, owner, name, at)
	if err != nil {
		return goerr.Wrap(err, "failed to mark workflow provisioned", goerr.V("owner", owner), goerr.V("name", name))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("owner", owner), goerr.V("name", name))
	}
	return nil
}
