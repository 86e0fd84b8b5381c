package infra

import (
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
)

// Clients bundles external dependencies of the usecase layer. BigQuery and
// ReportArchive are optional and stay nil when not configured.
type Clients struct {
	githubApp     interfaces.GitHubApp
	repository    interfaces.Repository
	bqClient      interfaces.BigQuery
	reportArchive interfaces.ReportArchive
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) Repository() interfaces.Repository {
	return x.repository
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) ReportArchive() interfaces.ReportArchive {
	return x.reportArchive
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithRepository(repo interfaces.Repository) Option {
	return func(x *Clients) {
		x.repository = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithReportArchive(archive interfaces.ReportArchive) Option {
	return func(x *Clients) {
		x.reportArchive = archive
	}
}
