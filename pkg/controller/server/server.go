package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository"
	"github.com/secmon-lab/codeql-fly/pkg/utils/errutil"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response is JSON encoded
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		code = http.StatusInternalServerError
		raw = []byte(`{"error":"failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers 400 for validation failures, 404 for unknown records
// and 500 otherwise. Only 500 is reported.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, repository.ErrInvalidInput):
		logging.From(r.Context()).Info(msg, slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		errutil.HandleError(r.Context(), msg, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

type config struct {
	ghSecret types.GitHubAppSecret
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/webhooks/github", handleGitHubWebhook(uc, cfg.ghSecret))
	r.Route("/api", func(r chi.Router) {
		r.Route("/repos", func(r chi.Router) {
			r.Post("/enable", handleEnableRepository(uc))
			r.Post("/trigger-scan", handleTriggerScan(uc))
		})
		r.Route("/installations", func(r chi.Router) {
			r.Get("/", handleListInstallations(uc))
			r.Get("/{installationId}/repos", handleListInstallationRepos(uc))
			r.Post("/sync/{installationId}", handleSyncInstallation(uc))
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", handleListReports(uc))
			r.Get("/{id}", handleGetReport(uc))
			r.Get("/{owner}/{repo}", handleListRepoReports(uc))
		})
		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", handleListAlerts(uc))
			r.Get("/{id}", handleGetAlert(uc))
			r.Get("/{owner}/{repo}", handleListRepoAlerts(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
