package memory

import (
	"sync"

	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

type workflowKey struct {
	owner  string
	repo   string
	branch types.BranchName
}

// Repository keeps every record in process memory. A single mutex guards all
// maps so that multi-record writes such as ReplaceAlerts are atomic.
type Repository struct {
	mu sync.RWMutex

	workflowRuns  map[workflowKey]*model.WorkflowRun
	installations map[types.GitHubAppInstallID]*model.Installation
	repositories  map[types.GitHubRepoID]*model.Repository
	alerts        []*model.Alert
	reports       []*model.Report
}

var _ interfaces.Repository = (*Repository)(nil)

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		workflowRuns:  make(map[workflowKey]*model.WorkflowRun),
		installations: make(map[types.GitHubAppInstallID]*model.Installation),
		repositories:  make(map[types.GitHubRepoID]*model.Repository),
	}
}
