package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/controller/server"
	"github.com/secmon-lab/codeql-fly/pkg/domain/mock"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
	"github.com/secmon-lab/codeql-fly/pkg/usecase"
)

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var v map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestEnableRepositoryAPI(t *testing.T) {
	t.Run("returns temp branch", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnableRepositoryFunc: func(ctx context.Context, input *model.EnableRepositoryInput) (*model.EnableRepositoryOutput, error) {
				return &model.EnableRepositoryOutput{TempBranch: model.TempBranchName("main")}, nil
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/repos/enable",
			strings.NewReader(`{"owner":"acme","repo":"widget","installationId":42}`))
		rec := serve(srv, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"ok":true,"tempBranch":"codeql-main"}`)
		gt.V(t, uc.EnableRepositoryCalls()[0].Input).Equal(&model.EnableRepositoryInput{
			Owner:     "acme",
			Repo:      "widget",
			InstallID: 42,
		})
	})

	t.Run("validation error is 400", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnableRepositoryFunc: func(ctx context.Context, input *model.EnableRepositoryInput) (*model.EnableRepositoryOutput, error) {
				return nil, input.Validate()
			},
		}
		srv := server.New(uc)

		rec := serve(srv, httptest.NewRequest(http.MethodPost, "/api/repos/enable", strings.NewReader(`{"owner":"acme"}`)))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.S(t, decodeJSON(t, rec)["error"].(string)).Contains("required")
	})

	t.Run("broken body is 400", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := serve(srv, httptest.NewRequest(http.MethodPost, "/api/repos/enable", strings.NewReader(`{`)))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.EnableRepositoryCalls())).Equal(0)
	})

	t.Run("execution error is 500", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnableRepositoryFunc: func(ctx context.Context, input *model.EnableRepositoryInput) (*model.EnableRepositoryOutput, error) {
				return nil, errors.New("permission denied")
			},
		}
		srv := server.New(uc)

		rec := serve(srv, httptest.NewRequest(http.MethodPost, "/api/repos/enable",
			strings.NewReader(`{"owner":"acme","repo":"widget","installationId":42}`)))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, decodeJSON(t, rec)["error"]).Equal("permission denied")
	})
}

func TestTriggerScanAPI(t *testing.T) {
	uc := &mock.UseCaseMock{
		TriggerScanFunc: func(ctx context.Context, input *model.TriggerScanInput) error {
			return nil
		},
	}
	srv := server.New(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/repos/trigger-scan",
		strings.NewReader(`{"owner":"acme","repo":"widget","branch":"codeql-main","installationId":42}`))
	rec := serve(srv, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal(`{"ok":true}`)
	gt.V(t, uc.TriggerScanCalls()[0].Input.Branch).Equal(types.BranchName("codeql-main"))
}

func TestInstallationAPI(t *testing.T) {
	uc := &mock.UseCaseMock{
		ListInstallationsFunc: func(ctx context.Context) ([]*model.Installation, error) {
			return nil, nil
		},
		ListInstallationRepositoriesFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.Repository, error) {
			if installID != 42 {
				return nil, goerr.Wrap(repository.ErrNotFound, "installation not found")
			}
			return []*model.Repository{{ID: 10, Owner: "acme", Name: "widget"}}, nil
		},
		SyncInstallationFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (int, error) {
			return 3, nil
		},
	}
	srv := server.New(uc)

	t.Run("list is never null", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/installations", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"installations":[]}`)
	})

	t.Run("repositories", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/installations/42/repos", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		repos := decodeJSON(t, rec)["repos"].([]any)
		gt.V(t, len(repos)).Equal(1)
	})

	t.Run("unknown installation is 404", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/installations/7/repos", nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("invalid installation id is 400", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/installations/abc/repos", nil))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("sync", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodPost, "/api/installations/sync/42", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"ok":true,"installed_count":3}`)
		gt.V(t, uc.SyncInstallationCalls()[0].InstallID).Equal(types.GitHubAppInstallID(42))
	})
}

func TestReportAndAlertAPI(t *testing.T) {
	uc := &mock.UseCaseMock{
		ListReportsFunc: func(ctx context.Context, page model.Page) ([]*model.Report, error) {
			return []*model.Report{{ID: "r1", Owner: "acme", Repo: "widget"}}, nil
		},
		GetReportFunc: func(ctx context.Context, id types.ReportID) (*model.Report, error) {
			if id != "r1" {
				return nil, goerr.Wrap(repository.ErrNotFound, "report not found")
			}
			return &model.Report{ID: "r1", Owner: "acme", Repo: "widget"}, nil
		},
		ListRepoReportsFunc: func(ctx context.Context, owner, repo string) ([]*model.Report, error) {
			return nil, nil
		},
		ListAlertsFunc: func(ctx context.Context, page model.Page) ([]*model.Alert, error) {
			return nil, nil
		},
		GetAlertFunc: func(ctx context.Context, id types.AlertID) (*model.Alert, error) {
			return &model.Alert{ID: id, Repo: "acme/widget"}, nil
		},
		ListRepoAlertsFunc: func(ctx context.Context, owner, repo string) ([]*model.Alert, error) {
			return []*model.Alert{{ID: "a1", Repo: owner + "/" + repo}}, nil
		},
	}
	srv := server.New(uc)

	t.Run("report listing clamps limit", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/reports?page=2&limit=1000", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)

		gt.V(t, uc.ListReportsCalls()[0].Page).Equal(model.Page{Page: 2, Limit: 50})
		body := decodeJSON(t, rec)
		gt.V(t, body["page"]).Equal(float64(2))
		gt.V(t, body["limit"]).Equal(float64(50))
		gt.V(t, len(body["reports"].([]any))).Equal(1)
	})

	t.Run("report by id", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/reports/r1", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeJSON(t, rec)["id"]).Equal("r1")

		rec = serve(srv, httptest.NewRequest(http.MethodGet, "/api/reports/missing", nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("reports by repository", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/reports/acme/widget", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"reports":[]}`)
		gt.V(t, uc.ListRepoReportsCalls()[0].Owner).Equal("acme")
		gt.V(t, uc.ListRepoReportsCalls()[0].Repo).Equal("widget")
	})

	t.Run("alert listing defaults", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/alerts", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"alerts":[],"page":0,"limit":20}`)
	})

	t.Run("alert by id and repository", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/alerts/a9", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, decodeJSON(t, rec)["id"]).Equal("a9")

		rec = serve(srv, httptest.NewRequest(http.MethodGet, "/api/alerts/acme/widget", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		alerts := decodeJSON(t, rec)["alerts"].([]any)
		gt.V(t, len(alerts)).Equal(1)
	})
}

func TestListingPastLastPage(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	gt.NoError(t, repo.ReplaceAlerts(ctx, "acme/widget", []*model.Alert{
		{Number: 1, Severity: types.SeverityHigh, RuleID: "js/xss", State: "open"},
	}, time.Now()))
	gt.NoError(t, repo.PutReport(ctx, &model.Report{
		ID: types.NewReportID(), Owner: "acme", Repo: "widget", Path: "security-reports/r.md", Content: "# r", CreatedAt: time.Now(),
	}))
	srv := server.New(usecase.New(infra.New(infra.WithRepository(repo))))

	testCases := []struct {
		name string
		path string
	}{
		{"max int alert page", "/api/alerts?page=9223372036854775807&limit=50"},
		{"max int report page", "/api/reports?page=9223372036854775807&limit=50"},
		{"min int alert page", "/api/alerts?page=-9223372036854775808"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(srv, httptest.NewRequest(http.MethodGet, tc.path, nil))
			gt.V(t, rec.Code).Equal(http.StatusOK)
		})
	}

	t.Run("past last page is empty", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/alerts?page=9223372036854775807&limit=50", nil))
		gt.V(t, len(decodeJSON(t, rec)["alerts"].([]any))).Equal(0)

		rec = serve(srv, httptest.NewRequest(http.MethodGet, "/api/reports?page=9223372036854775807&limit=50", nil))
		gt.V(t, len(decodeJSON(t, rec)["reports"].([]any))).Equal(0)
	})
}
