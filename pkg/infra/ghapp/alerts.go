package ghapp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

func alertRef(ref string) string {
	if strings.HasPrefix(ref, "refs/") {
		return ref
	}
	return "refs/heads/" + ref
}

// FetchScanAlerts lists every code scanning alert for the ref, all states
// and all pages
func (x *Client) FetchScanAlerts(ctx context.Context, input *interfaces.FetchScanAlertsInput) ([]*model.Alert, error) {
	if input.Ref == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "ref is empty")
	}

	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return nil, err
	}

	repoName := model.RepoFullName(input.Owner, input.Repo)
	opts := &github.AlertListOptions{
		Ref:         alertRef(input.Ref),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var alerts []*model.Alert
	for {
		result, resp, err := client.CodeScanning.ListAlertsForRepo(ctx, input.Owner, input.Repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list code scanning alerts",
				goerr.V("owner", input.Owner),
				goerr.V("repo", input.Repo),
				goerr.V("ref", opts.Ref),
				goerr.V("status", statusCode(resp, err)),
			)
		}

		for _, a := range result {
			alerts = append(alerts, convertAlert(repoName, a))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("fetched code scanning alerts",
		slog.String("repo", repoName),
		slog.String("ref", opts.Ref),
		slog.Int("count", len(alerts)),
	)

	return alerts, nil
}

func convertAlert(repo string, a *github.Alert) *model.Alert {
	rule := a.GetRule()
	instance := a.GetMostRecentInstance()
	location := instance.GetLocation()

	message := rule.GetDescription()
	if message == "" {
		message = rule.GetName()
	}

	alert := &model.Alert{
		Repo:     repo,
		Number:   types.AlertNumber(a.GetNumber()),
		Severity: model.SeverityFromRule(rule.GetSecuritySeverityLevel(), rule.GetSeverity()),
		RuleID:   rule.GetID(),
		Message:  message,
		File:     location.GetPath(),
		Line:     location.GetStartLine(),
		State:    a.GetState(),
		URL:      a.GetHTMLURL(),
	}
	if rule != nil && len(rule.Tags) > 0 {
		alert.Tags = append([]string{}, rule.Tags...)
	}

	return alert
}
