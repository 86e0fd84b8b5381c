package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

// Installation is a GitHub App installation on an account
type Installation struct {
	ID        types.GitHubAppInstallID `json:"id"`
	Account   Account                  `json:"account"`
	RepoIDs   []types.GitHubRepoID     `json:"repo_ids"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	DeletedAt *time.Time               `json:"deleted_at,omitempty"`

	// Repositories is filled by listing operations only
	Repositories []*Repository `json:"repos,omitempty" firestore:"-"`
}

type Account struct {
	ID    types.GitHubAccountID `json:"id"`
	Login string                `json:"login"`
	Type  string                `json:"type,omitempty"`
}

func (x *Installation) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "installation ID is empty")
	}
	if x.Account.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "account login is empty", goerr.V("installID", x.ID))
	}
	return nil
}

// Repository represents a GitHub repository onboarded through an installation
type Repository struct {
	ID          types.GitHubRepoID `json:"id"`
	Owner       string             `json:"owner"`
	Name        string             `json:"name"`
	HasWorkflow bool               `json:"has_workflow"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   *time.Time         `json:"deleted_at,omitempty"`
}

func (x *Repository) FullName() string {
	return RepoFullName(x.Owner, x.Name)
}

func (x *Repository) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository ID is empty")
	}
	if x.Owner == "" || x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository owner or name is empty", goerr.V("repoID", x.ID))
	}
	return nil
}

// RepoRef is a repository as referenced by installation events
type RepoRef struct {
	ID    types.GitHubRepoID
	Owner string
	Name  string
}

// NewRepoRef builds a reference from an "owner/name" full name. Installation
// payloads carry no owner object for selected repositories.
func NewRepoRef(id int64, fullName, name string) (RepoRef, error) {
	owner, repoName, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" {
		return RepoRef{}, goerr.Wrap(types.ErrInvalidGitHubData, "invalid repository full name", goerr.V("fullName", fullName))
	}
	if name == "" {
		name = repoName
	}
	if id == 0 {
		return RepoRef{}, goerr.Wrap(types.ErrInvalidGitHubData, "repository ID is empty", goerr.V("fullName", fullName))
	}

	return RepoRef{ID: types.GitHubRepoID(id), Owner: owner, Name: name}, nil
}

// GitHubAPIRepository is a repository as listed by the installation API
type GitHubAPIRepository struct {
	ID            types.GitHubRepoID
	Owner         string
	Name          string
	DefaultBranch string
	Archived      bool
	Disabled      bool
}

func RepoFullName(owner, repo string) string {
	return owner + "/" + repo
}
