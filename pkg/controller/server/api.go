package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("error", err.Error()))
	}
	return nil
}

func installIDParam(r *http.Request) (types.GitHubAppInstallID, error) {
	raw := chi.URLParam(r, "installationId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid installation id", goerr.V("installationId", raw))
	}
	return types.GitHubAppInstallID(id), nil
}

func pageParam(r *http.Request) model.Page {
	q := r.URL.Query()
	return model.ParsePage(q.Get("page"), q.Get("limit"))
}

type enableRepositoryResponse struct {
	OK         bool             `json:"ok"`
	TempBranch types.BranchName `json:"tempBranch"`
}

func handleEnableRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.EnableRepositoryInput
		if err := decodeBody(r, &input); err != nil {
			writeError(w, r, "invalid enable request", err)
			return
		}

		out, err := uc.EnableRepository(r.Context(), &input)
		if err != nil {
			writeError(w, r, "fail to enable repository", err)
			return
		}

		writeJSON(w, http.StatusOK, enableRepositoryResponse{OK: true, TempBranch: out.TempBranch})
	}
}

type okResponse struct {
	OK bool `json:"ok"`
}

func handleTriggerScan(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.TriggerScanInput
		if err := decodeBody(r, &input); err != nil {
			writeError(w, r, "invalid trigger request", err)
			return
		}

		if err := uc.TriggerScan(r.Context(), &input); err != nil {
			writeError(w, r, "fail to trigger scan", err)
			return
		}

		writeJSON(w, http.StatusOK, okResponse{OK: true})
	}
}

type installationsResponse struct {
	Installations []*model.Installation `json:"installations"`
}

func handleListInstallations(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		installations, err := uc.ListInstallations(r.Context())
		if err != nil {
			writeError(w, r, "fail to list installations", err)
			return
		}
		if installations == nil {
			installations = []*model.Installation{}
		}

		writeJSON(w, http.StatusOK, installationsResponse{Installations: installations})
	}
}

type repositoriesResponse struct {
	Repositories []*model.Repository `json:"repos"`
}

func handleListInstallationRepos(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		installID, err := installIDParam(r)
		if err != nil {
			writeError(w, r, "invalid installation id", err)
			return
		}

		repos, err := uc.ListInstallationRepositories(r.Context(), installID)
		if err != nil {
			writeError(w, r, "fail to list installation repositories", err)
			return
		}
		if repos == nil {
			repos = []*model.Repository{}
		}

		writeJSON(w, http.StatusOK, repositoriesResponse{Repositories: repos})
	}
}

type syncResponse struct {
	OK             bool `json:"ok"`
	InstalledCount int  `json:"installed_count"`
}

func handleSyncInstallation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		installID, err := installIDParam(r)
		if err != nil {
			writeError(w, r, "invalid installation id", err)
			return
		}

		count, err := uc.SyncInstallation(r.Context(), installID)
		if err != nil {
			writeError(w, r, "fail to sync installation", err)
			return
		}

		writeJSON(w, http.StatusOK, syncResponse{OK: true, InstalledCount: count})
	}
}

type reportsResponse struct {
	Reports []*model.Report `json:"reports"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}

func handleListReports(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		reports, err := uc.ListReports(r.Context(), page)
		if err != nil {
			writeError(w, r, "fail to list reports", err)
			return
		}
		if reports == nil {
			reports = []*model.Report{}
		}

		writeJSON(w, http.StatusOK, reportsResponse{Reports: reports, Page: page.Page, Limit: page.Limit})
	}
}

func handleGetReport(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := uc.GetReport(r.Context(), types.ReportID(chi.URLParam(r, "id")))
		if err != nil {
			writeError(w, r, "fail to get report", err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func handleListRepoReports(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := uc.ListRepoReports(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
		if err != nil {
			writeError(w, r, "fail to list repository reports", err)
			return
		}
		if reports == nil {
			reports = []*model.Report{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
	}
}

type alertsResponse struct {
	Alerts []*model.Alert `json:"alerts"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

func handleListAlerts(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		alerts, err := uc.ListAlerts(r.Context(), page)
		if err != nil {
			writeError(w, r, "fail to list alerts", err)
			return
		}
		if alerts == nil {
			alerts = []*model.Alert{}
		}

		writeJSON(w, http.StatusOK, alertsResponse{Alerts: alerts, Page: page.Page, Limit: page.Limit})
	}
}

func handleGetAlert(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alert, err := uc.GetAlert(r.Context(), types.AlertID(chi.URLParam(r, "id")))
		if err != nil {
			writeError(w, r, "fail to get alert", err)
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func handleListRepoAlerts(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := uc.ListRepoAlerts(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
		if err != nil {
			writeError(w, r, "fail to list repository alerts", err)
			return
		}
		if alerts == nil {
			alerts = []*model.Alert{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
	}
}
