package config

import (
	"log/slog"

	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	secret     types.GitHubAppSecret     `masq:"secret"`
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	apiURL     string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("CODEQL_FLY_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("CODEQL_FLY_GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App Webhook Secret",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("CODEQL_FLY_GITHUB_APP_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API root for GitHub Enterprise Server",
			Category:    "GitHub App",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("CODEQL_FLY_GITHUB_API_URL"),
		},
	}
}

func (x GitHubApp) New(options ...ghapp.Option) (*ghapp.Client, error) {
	if x.apiURL != "" {
		options = append([]ghapp.Option{ghapp.WithBaseURL(x.apiURL)}, options...)
	}
	return ghapp.New(x.id, x.privateKey, options...)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("apiURL", x.apiURL),
	)
}

func (x GitHubApp) Secret() types.GitHubAppSecret {
	return x.secret
}
