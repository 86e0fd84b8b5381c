package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

// Event is a verified webhook event the dispatcher handles. The set of
// variants is closed; anything else is dropped at the HTTP boundary.
type Event interface {
	EventName() string
	Validate() error
	event()
}

// InstallationCreated is `installation` with action `created`
type InstallationCreated struct {
	InstallID types.GitHubAppInstallID
	Account   Account
	Repos     []RepoRef
}

// InstallationDeleted is `installation` with action `deleted`
type InstallationDeleted struct {
	InstallID types.GitHubAppInstallID
}

// InstallationReposAdded is `installation_repositories` with action `added`
type InstallationReposAdded struct {
	InstallID types.GitHubAppInstallID
	Account   Account
	Repos     []RepoRef
}

// InstallationReposRemoved is `installation_repositories` with action `removed`
type InstallationReposRemoved struct {
	InstallID types.GitHubAppInstallID
	RepoIDs   []types.GitHubRepoID
}

// ReleasePublished is `release` with action `published`
type ReleasePublished struct {
	InstallID    types.GitHubAppInstallID
	Owner        string
	Repo         string
	Tag          string
	SourceBranch types.BranchName
}

// WorkflowRunCompleted is `workflow_run` with action `completed`
type WorkflowRunCompleted struct {
	InstallID    types.GitHubAppInstallID
	Owner        string
	Repo         string
	WorkflowName string
	Conclusion   string
	HeadBranch   types.BranchName
}

func (InstallationCreated) event()      {}
func (InstallationDeleted) event()      {}
func (InstallationReposAdded) event()   {}
func (InstallationReposRemoved) event() {}
func (ReleasePublished) event()         {}
func (WorkflowRunCompleted) event()     {}

func (InstallationCreated) EventName() string      { return "installation.created" }
func (InstallationDeleted) EventName() string      { return "installation.deleted" }
func (InstallationReposAdded) EventName() string   { return "installation_repositories.added" }
func (InstallationReposRemoved) EventName() string { return "installation_repositories.removed" }
func (ReleasePublished) EventName() string         { return "release.published" }
func (WorkflowRunCompleted) EventName() string     { return "workflow_run.completed" }

func validateInstallID(name string, id types.GitHubAppInstallID) error {
	if id == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "missing installation id", goerr.V("event", name))
	}
	return nil
}

func (x InstallationCreated) Validate() error {
	if err := validateInstallID(x.EventName(), x.InstallID); err != nil {
		return err
	}
	if x.Account.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "missing account login", goerr.V("installID", x.InstallID))
	}
	return nil
}

func (x InstallationDeleted) Validate() error {
	return validateInstallID(x.EventName(), x.InstallID)
}

func (x InstallationReposAdded) Validate() error {
	if err := validateInstallID(x.EventName(), x.InstallID); err != nil {
		return err
	}
	if x.Account.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "missing account login", goerr.V("installID", x.InstallID))
	}
	return nil
}

func (x InstallationReposRemoved) Validate() error {
	return validateInstallID(x.EventName(), x.InstallID)
}

func (x ReleasePublished) Validate() error {
	if err := validateInstallID(x.EventName(), x.InstallID); err != nil {
		return err
	}
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "missing repository", goerr.V("event", x.EventName()))
	}
	if x.Tag == "" {
		return goerr.Wrap(types.ErrValidationFailed, "missing release tag",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
		)
	}
	if x.SourceBranch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "missing source branch",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
			goerr.V("tag", x.Tag),
		)
	}
	return nil
}

func (x WorkflowRunCompleted) Validate() error {
	if err := validateInstallID(x.EventName(), x.InstallID); err != nil {
		return err
	}
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "missing repository", goerr.V("event", x.EventName()))
	}
	return nil
}
