package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/infra/workflow"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"github.com/secmon-lab/codeql-fly/pkg/utils/retry"
)

var errWorkflowNotVisible = goerr.New("workflow file is not visible yet")

// DispatchWorkflow runs the CodeQL workflow on the branch. It first polls
// until the workflow file is visible on the branch. When it never shows up,
// or the first dispatch is rejected, the fixed dispatch delay is applied
// before one more attempt.
func (x *Client) DispatchWorkflow(ctx context.Context, input *interfaces.DispatchWorkflowInput) error {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return err
	}

	logger := logging.From(ctx).With(
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("branch", input.Branch),
	)

	ready := x.waitWorkflowReady(ctx, client, input)
	if !ready {
		logger.Warn("workflow file not visible, falling back to fixed delay", slog.Duration("delay", x.dispatchDelay))
		if err := sleep(ctx, x.dispatchDelay); err != nil {
			return goerr.Wrap(err, "interrupted while waiting for dispatch")
		}
	}

	event := github.CreateWorkflowDispatchEventRequest{
		Ref: input.Branch.String(),
		Inputs: map[string]interface{}{
			"branch": input.Branch.String(),
		},
	}

	resp, err := client.Actions.CreateWorkflowDispatchEventByFileName(ctx, input.Owner, input.Repo, workflow.FileName, event)
	if err != nil && ready {
		switch statusCode(resp, err) {
		case http.StatusNotFound, http.StatusUnprocessableEntity:
			logger.Warn("dispatch rejected, retrying after fixed delay",
				slog.Duration("delay", x.dispatchDelay),
				slog.Any("error", err),
			)
			if err := sleep(ctx, x.dispatchDelay); err != nil {
				return goerr.Wrap(err, "interrupted while waiting for dispatch")
			}
			resp, err = client.Actions.CreateWorkflowDispatchEventByFileName(ctx, input.Owner, input.Repo, workflow.FileName, event)
		}
	}
	if err != nil {
		return goerr.Wrap(err, "failed to dispatch workflow",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
			goerr.V("status", statusCode(resp, err)),
		)
	}

	logger.Info("dispatched workflow", slog.String("workflow", workflow.FileName))
	return nil
}

func (x *Client) waitWorkflowReady(ctx context.Context, client *github.Client, input *interfaces.DispatchWorkflowInput) bool {
	err := retry.Do(ctx, func(ctx context.Context) error {
		sha, err := fileSHA(ctx, client, input.Owner, input.Repo, workflow.FilePath, input.Branch)
		if err != nil {
			return err
		}
		if sha == "" {
			return errWorkflowNotVisible
		}
		return nil
	},
		retry.WithRetries(uint64(x.readyAttempts-1)),
		retry.WithBaseDelay(x.readyInterval),
		retry.WithMaxDelay(x.readyInterval),
	)

	return err == nil
}
