package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

// CreateTempBranch resolves the tag (or base branch head) to a commit and
// creates codeql-<tag|base> there. An existing branch is not an error.
func (x *Client) CreateTempBranch(ctx context.Context, input *interfaces.CreateTempBranchInput) (types.BranchName, error) {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return "", err
	}

	ref, name := "tags/"+input.Tag, input.Tag
	if input.Tag == "" {
		base := input.BaseBranch
		if base == "" {
			base = model.DefaultBaseBranch
		}
		ref, name = "heads/"+base.String(), base.String()
	}

	sha, err := resolveCommit(ctx, client, input.Owner, input.Repo, ref)
	if err != nil {
		return "", err
	}

	branch := model.TempBranchName(name)
	newRef := &github.Reference{
		Ref:    github.String("refs/heads/" + branch.String()),
		Object: &github.GitObject{SHA: github.String(sha)},
	}

	resp, err := client.Git.CreateRef(ctx, input.Owner, input.Repo, newRef)
	if err != nil {
		if statusCode(resp, err) == http.StatusUnprocessableEntity &&
			strings.Contains(strings.ToLower(errorMessage(err)), "reference already exists") {
			logging.From(ctx).Info("temp branch already exists",
				slog.String("owner", input.Owner),
				slog.String("repo", input.Repo),
				slog.Any("branch", branch),
			)
			return branch, nil
		}

		return "", goerr.Wrap(err, "failed to create temp branch",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", branch),
			goerr.V("sha", sha),
			goerr.V("status", statusCode(resp, err)),
		)
	}

	logging.From(ctx).Info("created temp branch",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("branch", branch),
		slog.String("sha", sha),
	)

	return branch, nil
}

// resolveCommit returns the commit SHA a ref points to. Annotated tags are
// dereferenced to their target commit.
func resolveCommit(ctx context.Context, client *github.Client, owner, repo, ref string) (string, error) {
	resolved, resp, err := client.Git.GetRef(ctx, owner, repo, ref)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve ref",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
			goerr.V("status", statusCode(resp, err)),
		)
	}

	obj := resolved.GetObject()
	if obj.GetSHA() == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "no SHA for ref",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
		)
	}
	if obj.GetType() != "tag" {
		return obj.GetSHA(), nil
	}

	tag, resp, err := client.Git.GetTag(ctx, owner, repo, obj.GetSHA())
	if err != nil {
		return "", goerr.Wrap(err, "failed to dereference annotated tag",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
			goerr.V("status", statusCode(resp, err)),
		)
	}
	if tag.GetObject().GetSHA() == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "annotated tag has no target",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("ref", ref),
		)
	}

	return tag.GetObject().GetSHA(), nil
}

// DeleteBranch removes a branch. A branch that is already gone is not an error.
func (x *Client) DeleteBranch(ctx context.Context, input *interfaces.DeleteBranchInput) error {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return err
	}

	resp, err := client.Git.DeleteRef(ctx, input.Owner, input.Repo, "heads/"+input.Branch.String())
	if err != nil {
		switch statusCode(resp, err) {
		case http.StatusNotFound, http.StatusUnprocessableEntity:
			logging.From(ctx).Info("branch already deleted",
				slog.String("owner", input.Owner),
				slog.String("repo", input.Repo),
				slog.Any("branch", input.Branch),
			)
			return nil
		}

		return goerr.Wrap(err, "failed to delete branch",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
			goerr.V("status", statusCode(resp, err)),
		)
	}

	logging.From(ctx).Info("deleted branch",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("branch", input.Branch),
	)
	return nil
}
