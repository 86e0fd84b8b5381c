package ghapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra/workflow"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

const autoAddedTag = "auto-added"

// fileSHA returns the blob SHA of path on branch, or "" if it does not exist
func fileSHA(ctx context.Context, client *github.Client, owner, repo, path string, branch types.BranchName) (string, error) {
	file, _, resp, err := client.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{
		Ref: branch.String(),
	})
	if err != nil {
		if statusCode(resp, err) == http.StatusNotFound {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to get file",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("path", path),
			goerr.V("branch", branch),
			goerr.V("status", statusCode(resp, err)),
		)
	}
	if file == nil {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "path is a directory",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("path", path),
		)
	}

	return file.GetSHA(), nil
}

// putFile creates path on branch, or updates it in place with the current
// blob SHA when it already exists
func putFile(ctx context.Context, client *github.Client, owner, repo, path string, branch types.BranchName, content []byte, message string) error {
	sha, err := fileSHA(ctx, client, owner, repo, path, branch)
	if err != nil {
		return err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(branch.String()),
	}

	var resp *github.Response
	if sha == "" {
		_, resp, err = client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	} else {
		opts.SHA = github.String(sha)
		_, resp, err = client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to write file",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("path", path),
			goerr.V("branch", branch),
			goerr.V("update", sha != ""),
			goerr.V("status", statusCode(resp, err)),
		)
	}

	logging.From(ctx).Info("wrote file",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.String("path", path),
		slog.Any("branch", branch),
		slog.Bool("update", sha != ""),
	)
	return nil
}

func upsertWorkflow(ctx context.Context, client *github.Client, owner, repo string, branch types.BranchName, tag string) error {
	content, err := workflow.Render(tag)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Add CodeQL workflow for release %s", tag)
	return putFile(ctx, client, owner, repo, workflow.FilePath, branch, content, message)
}

// UpsertWorkflow writes the CodeQL workflow definition to the branch
func (x *Client) UpsertWorkflow(ctx context.Context, input *interfaces.UpsertWorkflowInput) error {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return err
	}
	return upsertWorkflow(ctx, client, input.Owner, input.Repo, input.Branch, input.Tag)
}

// PushReport commits the rendered report to the branch and returns its path
func (x *Client) PushReport(ctx context.Context, input *interfaces.PushReportInput) (string, error) {
	if input.Path == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "report path is empty")
	}

	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return "", err
	}

	scan := input.Tag
	if scan == "" {
		scan = input.Branch.String()
	}
	message := fmt.Sprintf("Add vulnerability report for %s scan", scan)

	if err := putFile(ctx, client, input.Owner, input.Repo, input.Path, input.Branch, []byte(input.Content), message); err != nil {
		return "", err
	}

	return input.Path, nil
}

// EnsureWorkflowOnDefaultBranch adds the workflow to the default branch
// unless it is already there
func (x *Client) EnsureWorkflowOnDefaultBranch(ctx context.Context, owner, repo string, installID types.GitHubAppInstallID) error {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return err
	}

	repository, resp, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("status", statusCode(resp, err)),
		)
	}

	branch := types.BranchName(repository.GetDefaultBranch())
	if branch == "" {
		branch = model.DefaultBaseBranch
	}

	sha, err := fileSHA(ctx, client, owner, repo, workflow.FilePath, branch)
	if err != nil {
		return err
	}
	if sha != "" {
		logging.From(ctx).Debug("workflow already present",
			slog.String("owner", owner),
			slog.String("repo", repo),
			slog.Any("branch", branch),
		)
		return nil
	}

	if err := upsertWorkflow(ctx, client, owner, repo, branch, autoAddedTag); err != nil {
		return err
	}

	logging.From(ctx).Info("workflow ensured on default branch",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Any("branch", branch),
	)
	return nil
}
