package ghapp_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra/ghapp"
	"github.com/secmon-lab/codeql-fly/pkg/infra/workflow"
	"gopkg.in/yaml.v2"
	"github.com/secmon-lab/codeql-fly/pkg/utils/testutil"
)

const installID = types.GitHubAppInstallID(67890)

type request struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// fakeGitHub serves the subset of the REST API the gateway calls
type fakeGitHub struct {
	t   *testing.T
	mux *http.ServeMux

	mu       sync.Mutex
	requests []request
}

func newFakeGitHub(t *testing.T) (*fakeGitHub, *httptest.Server) {
	f := &fakeGitHub{t: t, mux: http.NewServeMux()}
	f.mux.HandleFunc("POST /app/installations/{id}/access_tokens", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"token":"test-token","expires_at":"2099-01-01T00:00:00Z"}`)
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
			_ = json.Unmarshal(body, &req.Body)
		}
		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()

		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	return f, server
}

func (f *fakeGitHub) handle(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	})
}

func (f *fakeGitHub) find(method, path string) []request {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found []request
	for _, req := range f.requests {
		if req.Method == method && req.Path == path {
			found = append(found, req)
		}
	}
	return found
}

func newClient(t *testing.T, server *httptest.Server, opts ...ghapp.Option) *ghapp.Client {
	pem := testutil.NewPrivateKeyPEM(t)
	opts = append([]ghapp.Option{
		ghapp.WithBaseURL(server.URL),
		ghapp.WithDispatchDelay(10 * time.Millisecond),
		ghapp.WithReadyPoll(2, 10*time.Millisecond),
	}, opts...)

	client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey(pem), opts...)
	gt.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("test-key")

		_, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey(""))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(0), types.GitHubAppPrivateKey("test-key"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("non-positive ready attempts are rejected", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("test-key"),
			ghapp.WithReadyPoll(0, time.Second))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("HTTPClient returns error with invalid key", func(t *testing.T) {
		client, err := ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("invalid-key"))
		gt.NoError(t, err)

		httpClient, err := client.HTTPClient(installID)
		gt.Error(t, err)
		gt.V(t, httpClient).Equal(nil)
	})
}

func TestCreateTempBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("lightweight tag", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app/git/ref/tags/v1.0", 200,
			`{"ref":"refs/tags/v1.0","object":{"type":"commit","sha":"commit-sha"}}`)
		f.handle("POST /repos/octo/app/git/refs", 201, `{"ref":"refs/heads/codeql-v1.0"}`)

		branch, err := newClient(t, server).CreateTempBranch(ctx, &interfaces.CreateTempBranchInput{
			Owner: "octo", Repo: "app", Tag: "v1.0", InstallID: installID,
		})
		gt.NoError(t, err)
		gt.V(t, branch).Equal(types.BranchName("codeql-v1.0"))

		created := f.find("POST", "/repos/octo/app/git/refs")
		gt.V(t, len(created)).Equal(1)
		gt.V(t, created[0].Body["ref"]).Equal("refs/heads/codeql-v1.0")
		gt.V(t, created[0].Body["sha"]).Equal("commit-sha")
	})

	t.Run("annotated tag is dereferenced to its commit", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app/git/ref/tags/v2.0", 200,
			`{"ref":"refs/tags/v2.0","object":{"type":"tag","sha":"tag-object-sha"}}`)
		f.handle("GET /repos/octo/app/git/tags/tag-object-sha", 200,
			`{"tag":"v2.0","sha":"tag-object-sha","object":{"type":"commit","sha":"target-commit"}}`)
		f.handle("POST /repos/octo/app/git/refs", 201, `{"ref":"refs/heads/codeql-v2.0"}`)

		_, err := newClient(t, server).CreateTempBranch(ctx, &interfaces.CreateTempBranchInput{
			Owner: "octo", Repo: "app", Tag: "v2.0", InstallID: installID,
		})
		gt.NoError(t, err)

		created := f.find("POST", "/repos/octo/app/git/refs")
		gt.V(t, len(created)).Equal(1)
		gt.V(t, created[0].Body["sha"]).Equal("target-commit")
	})

	t.Run("base branch head is used without tag", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app/git/ref/heads/main", 200,
			`{"ref":"refs/heads/main","object":{"type":"commit","sha":"main-sha"}}`)
		f.handle("POST /repos/octo/app/git/refs", 201, `{"ref":"refs/heads/codeql-main"}`)

		branch, err := newClient(t, server).CreateTempBranch(ctx, &interfaces.CreateTempBranchInput{
			Owner: "octo", Repo: "app", InstallID: installID,
		})
		gt.NoError(t, err)
		gt.V(t, branch).Equal(types.BranchName("codeql-main"))
	})

	t.Run("existing branch is tolerated", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app/git/ref/tags/v1.0", 200,
			`{"ref":"refs/tags/v1.0","object":{"type":"commit","sha":"commit-sha"}}`)
		f.handle("POST /repos/octo/app/git/refs", 422, `{"message":"Reference already exists"}`)

		branch, err := newClient(t, server).CreateTempBranch(ctx, &interfaces.CreateTempBranchInput{
			Owner: "octo", Repo: "app", Tag: "v1.0", InstallID: installID,
		})
		gt.NoError(t, err)
		gt.V(t, branch).Equal(types.BranchName("codeql-v1.0"))
	})

	t.Run("missing tag fails", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app/git/ref/tags/nope", 404, `{"message":"Not Found"}`)

		_, err := newClient(t, server).CreateTempBranch(ctx, &interfaces.CreateTempBranchInput{
			Owner: "octo", Repo: "app", Tag: "nope", InstallID: installID,
		})
		gt.Error(t, err)
		gt.V(t, len(f.find("POST", "/repos/octo/app/git/refs"))).Equal(0)
	})
}

func TestDeleteBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes branch", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("DELETE /repos/octo/app/git/refs/heads/codeql-v1.0", 204, ``)

		err := newClient(t, server).DeleteBranch(ctx, &interfaces.DeleteBranchInput{
			Owner: "octo", Repo: "app", Branch: "codeql-v1.0", InstallID: installID,
		})
		gt.NoError(t, err)
		gt.V(t, len(f.find("DELETE", "/repos/octo/app/git/refs/heads/codeql-v1.0"))).Equal(1)
	})

	t.Run("already deleted branch is not an error", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("DELETE /repos/octo/app/git/refs/heads/codeql-v1.0", 422, `{"message":"Reference does not exist"}`)

		err := newClient(t, server).DeleteBranch(ctx, &interfaces.DeleteBranchInput{
			Owner: "octo", Repo: "app", Branch: "codeql-v1.0", InstallID: installID,
		})
		gt.NoError(t, err)
	})

	t.Run("server error is returned", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("DELETE /repos/octo/app/git/refs/heads/codeql-v1.0", 500, `{"message":"boom"}`)

		err := newClient(t, server).DeleteBranch(ctx, &interfaces.DeleteBranchInput{
			Owner: "octo", Repo: "app", Branch: "codeql-v1.0", InstallID: installID,
		})
		gt.Error(t, err)
	})
}

func TestUpsertWorkflow(t *testing.T) {
	ctx := context.Background()
	path := "/repos/octo/app/contents/" + workflow.FilePath

	t.Run("creates workflow file", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+path, 404, `{"message":"Not Found"}`)
		f.handle("PUT "+path, 201, `{"content":{"sha":"new"}}`)

		err := newClient(t, server).UpsertWorkflow(ctx, &interfaces.UpsertWorkflowInput{
			Owner: "octo", Repo: "app", Branch: "codeql-v1.0", Tag: "v1.0", InstallID: installID,
		})
		gt.NoError(t, err)

		puts := f.find("PUT", path)
		gt.V(t, len(puts)).Equal(1)
		gt.V(t, puts[0].Body["message"]).Equal("Add CodeQL workflow for release v1.0")
		gt.V(t, puts[0].Body["branch"]).Equal("codeql-v1.0")
		_, hasSHA := puts[0].Body["sha"]
		gt.False(t, hasSHA)

		raw, err := base64.StdEncoding.DecodeString(puts[0].Body["content"].(string))
		gt.NoError(t, err)
		var def workflow.Definition
		gt.NoError(t, yaml.Unmarshal(raw, &def))
		gt.V(t, def.Name).Equal(workflow.Name)
	})

	t.Run("updates existing workflow file with its sha", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+path, 200, `{"type":"file","sha":"old-sha","path":".github/workflows/codeql-fly.yml"}`)
		f.handle("PUT "+path, 200, `{"content":{"sha":"new"}}`)

		err := newClient(t, server).UpsertWorkflow(ctx, &interfaces.UpsertWorkflowInput{
			Owner: "octo", Repo: "app", Branch: "codeql-v1.0", Tag: "v1.0", InstallID: installID,
		})
		gt.NoError(t, err)

		puts := f.find("PUT", path)
		gt.V(t, len(puts)).Equal(1)
		gt.V(t, puts[0].Body["sha"]).Equal("old-sha")
	})
}

func TestPushReport(t *testing.T) {
	ctx := context.Background()
	reportPath := "security-reports/vulnerability-report-v1.0.md"
	path := "/repos/octo/app/contents/" + reportPath

	t.Run("commits report", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+path, 404, `{"message":"Not Found"}`)
		f.handle("PUT "+path, 201, `{"content":{"sha":"new"}}`)

		got, err := newClient(t, server).PushReport(ctx, &interfaces.PushReportInput{
			Owner: "octo", Repo: "app", Branch: "main", Path: reportPath,
			Content: "# Vulnerability Report", Tag: "v1.0", InstallID: installID,
		})
		gt.NoError(t, err)
		gt.V(t, got).Equal(reportPath)

		puts := f.find("PUT", path)
		gt.V(t, len(puts)).Equal(1)
		gt.V(t, puts[0].Body["message"]).Equal("Add vulnerability report for v1.0 scan")
		gt.V(t, puts[0].Body["branch"]).Equal("main")
	})

	t.Run("branch is named when tag is empty", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+path, 404, `{"message":"Not Found"}`)
		f.handle("PUT "+path, 201, `{"content":{"sha":"new"}}`)

		_, err := newClient(t, server).PushReport(ctx, &interfaces.PushReportInput{
			Owner: "octo", Repo: "app", Branch: "develop", Path: reportPath,
			Content: "x", InstallID: installID,
		})
		gt.NoError(t, err)
		gt.V(t, f.find("PUT", path)[0].Body["message"]).Equal("Add vulnerability report for develop scan")
	})

	t.Run("write failure is returned", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+path, 404, `{"message":"Not Found"}`)
		f.handle("PUT "+path, 409, `{"message":"conflict"}`)

		_, err := newClient(t, server).PushReport(ctx, &interfaces.PushReportInput{
			Owner: "octo", Repo: "app", Branch: "main", Path: reportPath,
			Content: "x", Tag: "v1.0", InstallID: installID,
		})
		gt.Error(t, err)
	})
}

func TestDispatchWorkflow(t *testing.T) {
	ctx := context.Background()
	contentPath := "/repos/octo/app/contents/" + workflow.FilePath
	dispatchPath := "/repos/octo/app/actions/workflows/" + workflow.FileName + "/dispatches"
	input := &interfaces.DispatchWorkflowInput{
		Owner: "octo", Repo: "app", Branch: "codeql-v1.0", InstallID: installID,
	}

	t.Run("dispatches once workflow is visible", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+contentPath, 200, `{"type":"file","sha":"wf-sha"}`)
		f.handle("POST "+dispatchPath, 204, ``)

		gt.NoError(t, newClient(t, server).DispatchWorkflow(ctx, input))

		dispatched := f.find("POST", dispatchPath)
		gt.V(t, len(dispatched)).Equal(1)
		gt.V(t, dispatched[0].Body["ref"]).Equal("codeql-v1.0")
		inputs := dispatched[0].Body["inputs"].(map[string]any)
		gt.V(t, inputs["branch"]).Equal("codeql-v1.0")
	})

	t.Run("falls back to fixed delay when workflow never shows up", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+contentPath, 404, `{"message":"Not Found"}`)
		f.handle("POST "+dispatchPath, 204, ``)

		gt.NoError(t, newClient(t, server).DispatchWorkflow(ctx, input))
		gt.V(t, len(f.find("GET", contentPath))).Equal(2)
		gt.V(t, len(f.find("POST", dispatchPath))).Equal(1)
	})

	t.Run("rejected dispatch is retried once", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET "+contentPath, 200, `{"type":"file","sha":"wf-sha"}`)
		f.handle("POST "+dispatchPath, 404, `{"message":"Not Found"}`)

		gt.Error(t, newClient(t, server).DispatchWorkflow(ctx, input))
		gt.V(t, len(f.find("POST", dispatchPath))).Equal(2)
	})
}

func TestFetchScanAlerts(t *testing.T) {
	ctx := context.Background()
	path := "/repos/octo/app/code-scanning/alerts"

	f, server := newFakeGitHub(t)
	f.mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s%s?page=2>; rel="next"`, "http://"+r.Host, path))
			fmt.Fprint(w, `[{
				"number": 1,
				"state": "open",
				"html_url": "https://github.com/octo/app/security/code-scanning/1",
				"rule": {"id": "js/xss", "severity": "error", "security_severity_level": "critical",
					"description": "Cross-site scripting", "tags": ["security", "cwe-79"]},
				"most_recent_instance": {"location": {"path": "src/app.js", "start_line": 42}}
			}]`)
			return
		}
		fmt.Fprint(w, `[{
			"number": 2,
			"state": "dismissed",
			"rule": {"id": "js/unused", "severity": "warning", "name": "Unused variable"}
		}]`)
	})

	alerts, err := newClient(t, server).FetchScanAlerts(ctx, &interfaces.FetchScanAlertsInput{
		Owner: "octo", Repo: "app", Ref: "codeql-v1.0", InstallID: installID,
	})
	gt.NoError(t, err)
	gt.V(t, len(alerts)).Equal(2)

	t.Run("first page alert is fully converted", func(t *testing.T) {
		a := alerts[0]
		gt.V(t, a.Repo).Equal("octo/app")
		gt.V(t, a.Number).Equal(types.AlertNumber(1))
		gt.V(t, a.Severity).Equal(types.SeverityCritical)
		gt.V(t, a.RuleID).Equal("js/xss")
		gt.V(t, a.Message).Equal("Cross-site scripting")
		gt.V(t, a.File).Equal("src/app.js")
		gt.V(t, a.Line).Equal(42)
		gt.V(t, a.State).Equal("open")
		gt.V(t, a.Tags).Equal([]string{"security", "cwe-79"})
	})

	t.Run("second page alert falls back to rule severity and name", func(t *testing.T) {
		a := alerts[1]
		gt.V(t, a.Severity).Equal(types.SeverityMedium)
		gt.V(t, a.Message).Equal("Unused variable")
		gt.V(t, a.File).Equal("")
		gt.V(t, a.Line).Equal(0)
	})

	t.Run("bare branch is expanded to a heads ref", func(t *testing.T) {
		reqs := f.find("GET", path)
		gt.V(t, len(reqs)).Equal(2)
		gt.S(t, reqs[0].Query).Contains("ref=refs%2Fheads%2Fcodeql-v1.0")
	})
}

func TestEnsureWorkflowOnDefaultBranch(t *testing.T) {
	ctx := context.Background()
	contentPath := "/repos/octo/app/contents/" + workflow.FilePath

	t.Run("adds workflow to default branch", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app", 200, `{"name":"app","default_branch":"trunk"}`)
		f.handle("GET "+contentPath, 404, `{"message":"Not Found"}`)
		f.handle("PUT "+contentPath, 201, `{"content":{"sha":"new"}}`)

		gt.NoError(t, newClient(t, server).EnsureWorkflowOnDefaultBranch(ctx, "octo", "app", installID))

		puts := f.find("PUT", contentPath)
		gt.V(t, len(puts)).Equal(1)
		gt.V(t, puts[0].Body["branch"]).Equal("trunk")
		gt.V(t, puts[0].Body["message"]).Equal("Add CodeQL workflow for release auto-added")
	})

	t.Run("skips when workflow already exists", func(t *testing.T) {
		f, server := newFakeGitHub(t)
		f.handle("GET /repos/octo/app", 200, `{"name":"app","default_branch":"main"}`)
		f.handle("GET "+contentPath, 200, `{"type":"file","sha":"wf-sha"}`)

		gt.NoError(t, newClient(t, server).EnsureWorkflowOnDefaultBranch(ctx, "octo", "app", installID))
		gt.V(t, len(f.find("PUT", contentPath))).Equal(0)
	})
}

func TestListInstallationRepos(t *testing.T) {
	f, server := newFakeGitHub(t)
	f.handle("GET /installation/repositories", 200, `{"total_count":2,"repositories":[
		{"id":11,"name":"app","owner":{"login":"octo"},"default_branch":"main"},
		{"id":12,"name":"old","owner":{"login":"octo"},"default_branch":"master","archived":true}
	]}`)

	repos, err := newClient(t, server).ListInstallationRepos(context.Background(), installID)
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(2)
	gt.V(t, repos[0].ID).Equal(types.GitHubRepoID(11))
	gt.V(t, repos[0].Owner).Equal("octo")
	gt.V(t, repos[1].Archived).Equal(true)
}

func TestListInstallationRepos_Integration(t *testing.T) {
	appIDStr := os.Getenv("TEST_GITHUB_APP_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")
	owner := os.Getenv("TEST_GITHUB_OWNER")

	if appIDStr == "" || privateKey == "" || owner == "" {
		t.Skip("TEST_GITHUB_APP_ID, TEST_GITHUB_PRIVATE_KEY, and TEST_GITHUB_OWNER must be set")
	}

	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	gt.NoError(t, err)

	client, err := ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))
	gt.NoError(t, err)

	ctx := context.Background()

	installID, err := client.GetInstallationIDForOwner(ctx, owner)
	gt.NoError(t, err)
	gt.V(t, installID).NotEqual(types.GitHubAppInstallID(0))

	repos, err := client.ListInstallationRepos(ctx, installID)
	gt.NoError(t, err)

	t.Logf("Found %d repositories for owner: %s", len(repos), owner)
	for _, repo := range repos {
		gt.V(t, repo.Owner).NotEqual("")
		gt.V(t, repo.Name).NotEqual("")
	}
}
