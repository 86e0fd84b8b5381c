package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
)

// TestAll runs all test cases for Repository.
// Every implementation must pass it, including the ones backed by shared
// databases, so each case uses unique owners and IDs.
func TestAll(t *testing.T, repo interfaces.Repository) {
	t.Run("WorkflowLedger", func(t *testing.T) {
		TestWorkflowLedger(t, repo)
	})
	t.Run("WorkflowLedgerBranchWithSlash", func(t *testing.T) {
		TestWorkflowLedgerBranchWithSlash(t, repo)
	})
	t.Run("Installation", func(t *testing.T) {
		TestInstallation(t, repo)
	})
	t.Run("InstallationRepositories", func(t *testing.T) {
		TestInstallationRepositories(t, repo)
	})
	t.Run("ReplaceAlerts", func(t *testing.T) {
		TestReplaceAlerts(t, repo)
	})
	t.Run("AlertPagination", func(t *testing.T) {
		TestAlertPagination(t, repo)
	})
	t.Run("Reports", func(t *testing.T) {
		TestReports(t, repo)
	})
}

func uniqueOwner() string {
	return fmt.Sprintf("owner-%s", uuid.New().String()[:8])
}

func uniqueID() int64 {
	return int64(uuid.New().ID()) + 1
}

// futureBase places records ahead of anything a previous run left behind so
// that newest-first listings start with them
func futureBase() time.Time {
	return time.Now().AddDate(100, 0, 0).Truncate(time.Millisecond)
}

func newWorkflowRun(owner, repo string, branch types.BranchName) *model.WorkflowRun {
	return &model.WorkflowRun{
		ID:           types.NewWorkflowRunID(),
		Owner:        owner,
		Repo:         repo,
		InstallID:    types.GitHubAppInstallID(uniqueID()),
		ReleaseTag:   "v1.0",
		SourceBranch: "main",
		TempBranch:   branch,
		CreatedAt:    time.Now().Truncate(time.Millisecond),
	}
}

func TestWorkflowLedger(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	owner := uniqueOwner()

	run := newWorkflowRun(owner, "app", "codeql-v1.0")
	gt.NoError(t, repo.OpenWorkflowRun(ctx, run))

	t.Run("find open entry", func(t *testing.T) {
		found, err := repo.FindWorkflowRun(ctx, owner, "app", "codeql-v1.0")
		gt.NoError(t, err)
		gt.V(t, found.ID).Equal(run.ID)
		gt.V(t, found.ReleaseTag).Equal("v1.0")
		gt.V(t, found.SourceBranch).Equal(types.BranchName("main"))
		gt.V(t, found.InstallID).Equal(run.InstallID)
	})

	t.Run("second open for same branch fails", func(t *testing.T) {
		dup := newWorkflowRun(owner, "app", "codeql-v1.0")
		err := repo.OpenWorkflowRun(ctx, dup)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

		found, err := repo.FindWorkflowRun(ctx, owner, "app", "codeql-v1.0")
		gt.NoError(t, err)
		gt.V(t, found.ID).Equal(run.ID)
	})

	t.Run("other repo with same branch is independent", func(t *testing.T) {
		other := newWorkflowRun(owner, "lib", "codeql-v1.0")
		gt.NoError(t, repo.OpenWorkflowRun(ctx, other))
		gt.NoError(t, repo.CloseWorkflowRun(ctx, other.ID))
	})

	t.Run("unknown branch is not found", func(t *testing.T) {
		_, err := repo.FindWorkflowRun(ctx, owner, "app", "codeql-v9.9")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("invalid entry is rejected", func(t *testing.T) {
		invalid := newWorkflowRun(owner, "app", "")
		err := repo.OpenWorkflowRun(ctx, invalid)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("close removes entry and allows reopen", func(t *testing.T) {
		gt.NoError(t, repo.CloseWorkflowRun(ctx, run.ID))

		_, err := repo.FindWorkflowRun(ctx, owner, "app", "codeql-v1.0")
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		err = repo.CloseWorkflowRun(ctx, run.ID)
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		reopened := newWorkflowRun(owner, "app", "codeql-v1.0")
		gt.NoError(t, repo.OpenWorkflowRun(ctx, reopened))
		gt.NoError(t, repo.CloseWorkflowRun(ctx, reopened.ID))
	})
}

func TestWorkflowLedgerBranchWithSlash(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	owner := uniqueOwner()

	run := newWorkflowRun(owner, "app", "codeql-release/2024.1")
	gt.NoError(t, repo.OpenWorkflowRun(ctx, run))

	found, err := repo.FindWorkflowRun(ctx, owner, "app", "codeql-release/2024.1")
	gt.NoError(t, err)
	gt.V(t, found.TempBranch).Equal(types.BranchName("codeql-release/2024.1"))

	_, err = repo.FindWorkflowRun(ctx, owner, "app", "codeql-release:2024.1")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, repo.CloseWorkflowRun(ctx, run.ID))
}

func newInstallation(login string) *model.Installation {
	now := time.Now().Truncate(time.Millisecond)
	return &model.Installation{
		ID: types.GitHubAppInstallID(uniqueID()),
		Account: model.Account{
			ID:    types.GitHubAccountID(uniqueID()),
			Login: login,
			Type:  "Organization",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInstallation(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	inst := newInstallation(uniqueOwner())

	gt.NoError(t, repo.PutInstallation(ctx, inst))

	t.Run("get installation", func(t *testing.T) {
		got, err := repo.GetInstallation(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, got.Account.Login).Equal(inst.Account.Login)
		gt.V(t, got.Account.Type).Equal("Organization")
		gt.V(t, got.DeletedAt).Equal(nil)
	})

	t.Run("listed while live", func(t *testing.T) {
		list, err := repo.ListInstallations(ctx)
		gt.NoError(t, err)
		gt.True(t, containsInstallation(list, inst.ID))
	})

	t.Run("soft delete hides installation", func(t *testing.T) {
		gt.NoError(t, repo.DeleteInstallation(ctx, inst.ID, time.Now()))

		_, err := repo.GetInstallation(ctx, inst.ID)
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		list, err := repo.ListInstallations(ctx)
		gt.NoError(t, err)
		gt.False(t, containsInstallation(list, inst.ID))

		err = repo.DeleteInstallation(ctx, inst.ID, time.Now())
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("put again revives installation", func(t *testing.T) {
		gt.NoError(t, repo.PutInstallation(ctx, inst))
		got, err := repo.GetInstallation(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, got.DeletedAt).Equal(nil)
	})

	t.Run("unknown installation is not found", func(t *testing.T) {
		_, err := repo.GetInstallation(ctx, types.GitHubAppInstallID(uniqueID()))
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func containsInstallation(list []*model.Installation, id types.GitHubAppInstallID) bool {
	for _, inst := range list {
		if inst.ID == id {
			return true
		}
	}
	return false
}

func newRepository(owner, name string) *model.Repository {
	now := time.Now().Truncate(time.Millisecond)
	return &model.Repository{
		ID:        types.GitHubRepoID(uniqueID()),
		Owner:     owner,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func repoIDs(repos []*model.Repository) []types.GitHubRepoID {
	ids := make([]types.GitHubRepoID, 0, len(repos))
	for _, r := range repos {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestInstallationRepositories(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	owner := uniqueOwner()
	inst := newInstallation(owner)
	gt.NoError(t, repo.PutInstallation(ctx, inst))

	r1 := newRepository(owner, "app")
	r2 := newRepository(owner, "lib")
	r3 := newRepository(owner, "docs")
	for _, r := range []*model.Repository{r1, r2, r3} {
		gt.NoError(t, repo.PutRepository(ctx, r))
	}

	t.Run("attach keeps order and ignores duplicates", func(t *testing.T) {
		gt.NoError(t, repo.AttachRepositories(ctx, inst.ID, []types.GitHubRepoID{r1.ID, r2.ID}))
		gt.NoError(t, repo.AttachRepositories(ctx, inst.ID, []types.GitHubRepoID{r2.ID, r3.ID}))

		repos, err := repo.ListInstallationRepositories(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, repoIDs(repos)).Equal([]types.GitHubRepoID{r1.ID, r2.ID, r3.ID})
	})

	t.Run("detach removes repositories", func(t *testing.T) {
		gt.NoError(t, repo.DetachRepositories(ctx, inst.ID, []types.GitHubRepoID{r2.ID}))

		repos, err := repo.ListInstallationRepositories(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, repoIDs(repos)).Equal([]types.GitHubRepoID{r1.ID, r3.ID})
	})

	t.Run("replace syncs the set", func(t *testing.T) {
		gt.NoError(t, repo.ReplaceRepositories(ctx, inst.ID, []types.GitHubRepoID{r2.ID, r2.ID}))

		repos, err := repo.ListInstallationRepositories(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, repoIDs(repos)).Equal([]types.GitHubRepoID{r2.ID})

		got, err := repo.GetInstallation(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, got.RepoIDs).Equal([]types.GitHubRepoID{r2.ID})
	})

	t.Run("put installation keeps repository set", func(t *testing.T) {
		updated := *inst
		updated.RepoIDs = nil
		updated.Account.Type = "User"
		gt.NoError(t, repo.PutInstallation(ctx, &updated))

		got, err := repo.GetInstallation(ctx, inst.ID)
		gt.NoError(t, err)
		gt.V(t, got.RepoIDs).Equal([]types.GitHubRepoID{r2.ID})
		gt.V(t, got.Account.Type).Equal("User")
	})

	t.Run("mark workflow provisioned", func(t *testing.T) {
		gt.NoError(t, repo.MarkWorkflowProvisioned(ctx, owner, "lib", time.Now()))

		got, err := repo.GetRepository(ctx, r2.ID)
		gt.NoError(t, err)
		gt.True(t, got.HasWorkflow)

		// a plain upsert does not forget the provisioned workflow
		gt.NoError(t, repo.PutRepository(ctx, newRepositoryWithID(r2)))
		got, err = repo.GetRepository(ctx, r2.ID)
		gt.NoError(t, err)
		gt.True(t, got.HasWorkflow)

		err = repo.MarkWorkflowProvisioned(ctx, owner, "missing", time.Now())
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("unknown installation", func(t *testing.T) {
		unknown := types.GitHubAppInstallID(uniqueID())
		_, err := repo.ListInstallationRepositories(ctx, unknown)
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		err = repo.AttachRepositories(ctx, unknown, []types.GitHubRepoID{r1.ID})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("unknown repository", func(t *testing.T) {
		_, err := repo.GetRepository(ctx, types.GitHubRepoID(uniqueID()))
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func newRepositoryWithID(src *model.Repository) *model.Repository {
	cpy := *src
	cpy.HasWorkflow = false
	cpy.UpdatedAt = time.Now().Truncate(time.Millisecond)
	return &cpy
}

func newAlert(number int64, severity types.Severity) *model.Alert {
	return &model.Alert{
		Number:   types.AlertNumber(number),
		Severity: severity,
		RuleID:   fmt.Sprintf("js/rule-%d", number),
		Message:  "message",
		File:     "src/app.js",
		Line:     int(number) * 10,
		State:    "open",
		URL:      fmt.Sprintf("https://github.com/o/r/security/code-scanning/%d", number),
		Tags:     []string{"security"},
	}
}

func TestReplaceAlerts(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	repoName := model.RepoFullName(uniqueOwner(), "app")
	base := futureBase()

	first := []*model.Alert{
		newAlert(1, types.SeverityHigh),
		newAlert(2, types.SeverityLow),
	}
	gt.NoError(t, repo.ReplaceAlerts(ctx, repoName, first, base))

	var firstIDs []types.AlertID
	t.Run("first scan is live", func(t *testing.T) {
		alerts, err := repo.ListRepoAlerts(ctx, repoName)
		gt.NoError(t, err)
		gt.V(t, len(alerts)).Equal(2)
		for _, a := range alerts {
			gt.V(t, a.Repo).Equal(repoName)
			gt.V(t, a.ID).NotEqual(types.AlertID(""))
			gt.V(t, a.DeletedAt).Equal(nil)
			firstIDs = append(firstIDs, a.ID)
		}
		gt.V(t, alerts[0].Number).Equal(types.AlertNumber(1))
		gt.V(t, alerts[0].Tags).Equal([]string{"security"})

		got, err := repo.GetAlert(ctx, alerts[1].ID)
		gt.NoError(t, err)
		gt.V(t, got.Severity).Equal(types.SeverityLow)
		gt.V(t, got.Line).Equal(20)
	})

	t.Run("second scan supersedes the first", func(t *testing.T) {
		second := []*model.Alert{
			newAlert(2, types.SeverityMedium),
			newAlert(3, types.SeverityCritical),
			newAlert(4, types.SeverityLow),
		}
		gt.NoError(t, repo.ReplaceAlerts(ctx, repoName, second, base.Add(time.Second)))

		alerts, err := repo.ListRepoAlerts(ctx, repoName)
		gt.NoError(t, err)
		gt.V(t, len(alerts)).Equal(3)
		gt.V(t, alerts[0].Number).Equal(types.AlertNumber(2))
		gt.V(t, alerts[0].Severity).Equal(types.SeverityMedium)

		for _, id := range firstIDs {
			_, err := repo.GetAlert(ctx, id)
			gt.True(t, errors.Is(err, repository.ErrNotFound))
		}
	})

	t.Run("empty scan clears live alerts", func(t *testing.T) {
		gt.NoError(t, repo.ReplaceAlerts(ctx, repoName, nil, base.Add(2*time.Second)))

		alerts, err := repo.ListRepoAlerts(ctx, repoName)
		gt.NoError(t, err)
		gt.V(t, len(alerts)).Equal(0)
	})

	t.Run("duplicate numbers in one batch are rejected", func(t *testing.T) {
		dup := []*model.Alert{newAlert(7, types.SeverityHigh), newAlert(7, types.SeverityLow)}
		err := repo.ReplaceAlerts(ctx, repoName, dup, base.Add(3*time.Second))
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("other repositories are untouched", func(t *testing.T) {
		otherName := model.RepoFullName(uniqueOwner(), "app")
		gt.NoError(t, repo.ReplaceAlerts(ctx, otherName, []*model.Alert{newAlert(1, types.SeverityHigh)}, base))
		gt.NoError(t, repo.ReplaceAlerts(ctx, repoName, []*model.Alert{newAlert(1, types.SeverityHigh)}, base.Add(4*time.Second)))

		alerts, err := repo.ListRepoAlerts(ctx, otherName)
		gt.NoError(t, err)
		gt.V(t, len(alerts)).Equal(1)
	})
}

func TestAlertPagination(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	repoName := model.RepoFullName(uniqueOwner(), "paged")
	at := futureBase().AddDate(1, 0, 0)

	var alerts []*model.Alert
	for i := int64(1); i <= 5; i++ {
		alerts = append(alerts, newAlert(i, types.SeverityHigh))
	}
	gt.NoError(t, repo.ReplaceAlerts(ctx, repoName, alerts, at))

	t.Run("first page", func(t *testing.T) {
		got, err := repo.ListAlerts(ctx, model.NewPage(0, 2))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(2)
		gt.V(t, got[0].Repo).Equal(repoName)
		gt.V(t, got[0].Number).Equal(types.AlertNumber(1))
		gt.V(t, got[1].Number).Equal(types.AlertNumber(2))
	})

	t.Run("second page", func(t *testing.T) {
		got, err := repo.ListAlerts(ctx, model.NewPage(1, 2))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(2)
		gt.V(t, got[0].Number).Equal(types.AlertNumber(3))
	})

	t.Run("limit is clamped", func(t *testing.T) {
		got, err := repo.ListAlerts(ctx, model.NewPage(0, 1000))
		gt.NoError(t, err)
		gt.True(t, len(got) <= model.MaxPageLimit)
		gt.True(t, len(got) >= 5)
	})

	t.Run("beyond range is empty", func(t *testing.T) {
		got, err := repo.ListAlerts(ctx, model.NewPage(1000000, 50))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(0)
	})

	t.Run("max int page is empty", func(t *testing.T) {
		got, err := repo.ListAlerts(ctx, model.ParsePage("9223372036854775807", "50"))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(0)
	})
}

func newReport(owner, repo string, at time.Time) *model.Report {
	return &model.Report{
		ID:        types.NewReportID(),
		Owner:     owner,
		Repo:      repo,
		Branch:    "main",
		Tag:       "v1.0",
		Path:      model.ReportFilePath("v1.0", at),
		Content:   "# Vulnerability Report\n",
		CreatedAt: at,
	}
}

func TestReports(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	owner := uniqueOwner()
	base := futureBase().AddDate(2, 0, 0)

	r1 := newReport(owner, "app", base)
	r2 := newReport(owner, "app", base.Add(time.Second))
	r3 := newReport(owner, "lib", base.Add(2*time.Second))
	for _, r := range []*model.Report{r1, r2, r3} {
		gt.NoError(t, repo.PutReport(ctx, r))
	}

	t.Run("get report", func(t *testing.T) {
		got, err := repo.GetReport(ctx, r1.ID)
		gt.NoError(t, err)
		gt.V(t, got.Content).Equal(r1.Content)
		gt.V(t, got.Path).Equal(r1.Path)
		gt.V(t, got.Branch).Equal(types.BranchName("main"))
	})

	t.Run("reports are immutable", func(t *testing.T) {
		err := repo.PutReport(ctx, r1)
		gt.True(t, errors.Is(err, repository.ErrAlreadyExists))
	})

	t.Run("list newest first", func(t *testing.T) {
		got, err := repo.ListReports(ctx, model.NewPage(0, 2))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(2)
		gt.V(t, got[0].ID).Equal(r3.ID)
		gt.V(t, got[1].ID).Equal(r2.ID)
	})

	t.Run("list by repository", func(t *testing.T) {
		got, err := repo.ListRepoReports(ctx, owner, "app")
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(2)
		gt.V(t, got[0].ID).Equal(r2.ID)
		gt.V(t, got[1].ID).Equal(r1.ID)
	})

	t.Run("unknown repository has no reports", func(t *testing.T) {
		got, err := repo.ListRepoReports(ctx, owner, "missing")
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(0)
	})

	t.Run("unknown report is not found", func(t *testing.T) {
		_, err := repo.GetReport(ctx, types.NewReportID())
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("beyond range is empty", func(t *testing.T) {
		got, err := repo.ListReports(ctx, model.NewPage(1000000, 50))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(0)
	})

	t.Run("max int page is empty", func(t *testing.T) {
		got, err := repo.ListReports(ctx, model.ParsePage("9223372036854775807", "50"))
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(0)
	})
}
