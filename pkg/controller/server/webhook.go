package server

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/utils/errutil"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"github.com/secmon-lab/codeql-fly/pkg/utils/signature"
)

const (
	eventInstallation             = "installation"
	eventInstallationRepositories = "installation_repositories"
	eventRelease                  = "release"
	eventWorkflowRun              = "workflow_run"
)

type webhookResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// handleGitHubWebhook verifies the signature over the raw body, converts the
// delivery into a model.Event and runs its handler before answering. The
// handler gets a context detached from the request so a disconnecting
// client does not abort a half-done cycle.
func handleGitHubWebhook(uc interfaces.UseCase, secret types.GitHubAppSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sigs := r.Header.Values(signature.HeaderName)
		if len(sigs) == 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing signature"})
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read body"})
			return
		}

		if !signature.Verify([]byte(secret), body, sigs) {
			logging.From(ctx).Warn("invalid webhook signature")
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid signature"})
			return
		}

		eventType := github.WebHookType(r)
		ctx = logging.WithAttrs(ctx,
			slog.String("github_event", eventType),
			slog.String("delivery_id", github.DeliveryID(r)),
		)

		ev, err := parseWebhookEvent(eventType, r.Header.Get("Content-Type"), body)
		if err != nil {
			logging.From(ctx).Warn("invalid webhook payload", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if ev == nil {
			logging.From(ctx).Debug("ignore webhook event")
			writeJSON(w, http.StatusOK, webhookResponse{OK: true, Message: "ignored"})
			return
		}
		if err := ev.Validate(); err != nil {
			logging.From(ctx).Warn("invalid webhook event", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := uc.HandleEvent(DetachContext(ctx), ev); err != nil {
			errutil.HandleError(ctx, "fail to handle GitHub webhook event", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, webhookResponse{OK: true})
	}
}

// parseWebhookEvent returns nil for event types and actions nothing handles
func parseWebhookEvent(eventType, contentType string, body []byte) (model.Event, error) {
	switch eventType {
	case eventInstallation, eventInstallationRepositories, eventRelease, eventWorkflowRun:
	case "":
		return nil, goerr.Wrap(types.ErrValidationFailed, "missing event type")
	default:
		return nil, nil
	}

	payload := body
	if mediaType, _, _ := mime.ParseMediaType(contentType); mediaType == "application/x-www-form-urlencoded" {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse form body")
		}
		payload = []byte(form.Get("payload"))
	}

	raw, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse webhook", goerr.V("event", eventType))
	}

	return toEvent(raw)
}

func toEvent(raw any) (model.Event, error) {
	switch ev := raw.(type) {
	case *github.InstallationEvent:
		installID := types.GitHubAppInstallID(ev.GetInstallation().GetID())
		switch ev.GetAction() {
		case "created":
			repos, err := toRepoRefs(ev.Repositories)
			if err != nil {
				return nil, err
			}
			return model.InstallationCreated{
				InstallID: installID,
				Account:   toAccount(ev.GetInstallation().GetAccount()),
				Repos:     repos,
			}, nil
		case "deleted":
			return model.InstallationDeleted{InstallID: installID}, nil
		}

	case *github.InstallationRepositoriesEvent:
		installID := types.GitHubAppInstallID(ev.GetInstallation().GetID())
		switch ev.GetAction() {
		case "added":
			repos, err := toRepoRefs(ev.RepositoriesAdded)
			if err != nil {
				return nil, err
			}
			return model.InstallationReposAdded{
				InstallID: installID,
				Account:   toAccount(ev.GetInstallation().GetAccount()),
				Repos:     repos,
			}, nil
		case "removed":
			ids := make([]types.GitHubRepoID, 0, len(ev.RepositoriesRemoved))
			for _, repo := range ev.RepositoriesRemoved {
				ids = append(ids, types.GitHubRepoID(repo.GetID()))
			}
			return model.InstallationReposRemoved{InstallID: installID, RepoIDs: ids}, nil
		}

	case *github.ReleaseEvent:
		if ev.GetAction() != "published" {
			return nil, nil
		}
		source := ev.GetRelease().GetTargetCommitish()
		if source == "" {
			source = ev.GetRepo().GetDefaultBranch()
		}
		return model.ReleasePublished{
			InstallID:    types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			Owner:        ev.GetRepo().GetOwner().GetLogin(),
			Repo:         ev.GetRepo().GetName(),
			Tag:          ev.GetRelease().GetTagName(),
			SourceBranch: types.BranchName(source),
		}, nil

	case *github.WorkflowRunEvent:
		if ev.GetAction() != "completed" {
			return nil, nil
		}
		run := ev.GetWorkflowRun()
		return model.WorkflowRunCompleted{
			InstallID:    types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			Owner:        ev.GetRepo().GetOwner().GetLogin(),
			Repo:         ev.GetRepo().GetName(),
			WorkflowName: run.GetName(),
			Conclusion:   run.GetConclusion(),
			HeadBranch:   types.BranchName(run.GetHeadBranch()),
		}, nil
	}

	return nil, nil
}

func toAccount(user *github.User) model.Account {
	return model.Account{
		ID:    types.GitHubAccountID(user.GetID()),
		Login: user.GetLogin(),
		Type:  user.GetType(),
	}
}

func toRepoRefs(repos []*github.Repository) ([]model.RepoRef, error) {
	refs := make([]model.RepoRef, 0, len(repos))
	for _, repo := range repos {
		ref, err := model.NewRepoRef(repo.GetID(), repo.GetFullName(), repo.GetName())
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
