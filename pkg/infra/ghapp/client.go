package ghapp

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

const (
	DefaultDispatchDelay = 2 * time.Second
	DefaultReadyAttempts = 5
	DefaultReadyInterval = time.Second
)

// Client is the GitHub App gateway. Every operation mints its own
// installation token; nothing is cached between calls.
type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	baseURL   *url.URL
	transport http.RoundTripper

	dispatchDelay time.Duration
	readyAttempts int
	readyInterval time.Duration
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client) error

// WithBaseURL points the client to a GitHub Enterprise (or test) API root
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", baseURL), goerr.V("error", err))
		}
		x.baseURL = u
		return nil
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) error {
		x.transport = tr
		return nil
	}
}

// WithDispatchDelay sets the fixed wait applied when the workflow file does
// not become visible before dispatch
func WithDispatchDelay(d time.Duration) Option {
	return func(x *Client) error {
		x.dispatchDelay = d
		return nil
	}
}

// WithReadyPoll sets how often the workflow file is looked up before dispatch
func WithReadyPoll(attempts int, interval time.Duration) Option {
	return func(x *Client) error {
		if attempts < 1 {
			return goerr.Wrap(types.ErrInvalidOption, "ready poll attempts must be positive", goerr.V("attempts", attempts))
		}
		x.readyAttempts = attempts
		x.readyInterval = interval
		return nil
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:         appID,
		pem:           pem,
		transport:     http.DefaultTransport,
		dispatchDelay: DefaultDispatchDelay,
		readyAttempts: DefaultReadyAttempts,
		readyInterval: DefaultReadyInterval,
	}
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

func (x *Client) newGitHubClient(httpClient *http.Client) *github.Client {
	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func (x *Client) apiRoot() string {
	if x.baseURL == nil {
		return ""
	}
	return strings.TrimSuffix(x.baseURL.String(), "/")
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	httpClient, err := x.HTTPClient(installID)
	if err != nil {
		return nil, err
	}
	return x.newGitHubClient(httpClient), nil
}

// HTTPClient returns an http.Client authenticated as the installation
func (x *Client) HTTPClient(installID types.GitHubAppInstallID) (*http.Client, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client", goerr.V("installID", installID))
	}
	if root := x.apiRoot(); root != "" {
		itr.BaseURL = root
	}

	return &http.Client{Transport: itr}, nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(x.transport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	if root := x.apiRoot(); root != "" {
		itr.BaseURL = root
	}
	return x.newGitHubClient(&http.Client{Transport: itr}), nil
}

func statusCode(resp *github.Response, err error) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	return 0
}

func errorMessage(err error) string {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Message
	}
	return ""
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
