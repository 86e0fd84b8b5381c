package model_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{"defaults for zero limit", 0, 0, 0, model.DefaultPageLimit},
		{"limit is clamped", 1, 1000, 1, model.MaxPageLimit},
		{"negative page is zero", -3, 10, 0, 10},
		{"negative limit is default", 2, -1, 2, model.DefaultPageLimit},
		{"max limit kept", 0, 50, 0, 50},
		{"huge page is capped", math.MaxInt, 50, model.MaxPage, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.NewPage(tc.page, tc.limit)
			gt.V(t, p.Page).Equal(tc.expectedPage)
			gt.V(t, p.Limit).Equal(tc.expectedLimit)
		})
	}
}

func TestParsePage(t *testing.T) {
	t.Run("parses and clamps", func(t *testing.T) {
		p := model.ParsePage("2", "1000")
		gt.V(t, p).Equal(model.Page{Page: 2, Limit: 50})
		gt.V(t, p.Offset()).Equal(100)
	})

	t.Run("invalid values use defaults", func(t *testing.T) {
		gt.V(t, model.ParsePage("x", "")).Equal(model.Page{Page: 0, Limit: 20})
	})

	t.Run("max int page does not overflow offset", func(t *testing.T) {
		p := model.ParsePage("9223372036854775807", "50")
		gt.True(t, p.Offset() >= 0)

		start, end := p.Slice(3)
		gt.V(t, start).Equal(3)
		gt.V(t, end).Equal(3)
	})
}

func TestPageSlice(t *testing.T) {
	t.Run("window inside range", func(t *testing.T) {
		start, end := model.NewPage(1, 2).Slice(5)
		gt.V(t, start).Equal(2)
		gt.V(t, end).Equal(4)
	})

	t.Run("beyond range is empty", func(t *testing.T) {
		start, end := model.NewPage(10, 20).Slice(5)
		gt.V(t, start).Equal(5)
		gt.V(t, end).Equal(5)
	})

	t.Run("last partial window", func(t *testing.T) {
		start, end := model.NewPage(2, 2).Slice(5)
		gt.V(t, start).Equal(4)
		gt.V(t, end).Equal(5)
	})

	t.Run("unclamped page saturates", func(t *testing.T) {
		p := model.Page{Page: math.MaxInt, Limit: 50}
		gt.V(t, p.Offset()).Equal(math.MaxInt)

		start, end := p.Slice(5)
		gt.V(t, start).Equal(5)
		gt.V(t, end).Equal(5)
	})
}

func TestTempBranchName(t *testing.T) {
	gt.V(t, model.TempBranchName("v1.2.3")).Equal(types.BranchName("codeql-v1.2.3"))
	gt.V(t, model.TempBranchName("main")).Equal(types.BranchName("codeql-main"))
}

func TestNewRepoRef(t *testing.T) {
	t.Run("owner taken from full name", func(t *testing.T) {
		ref := gt.R1(model.NewRepoRef(10, "acme/widget", "")).NoError(t)
		gt.V(t, ref).Equal(model.RepoRef{ID: 10, Owner: "acme", Name: "widget"})
	})

	t.Run("invalid full name", func(t *testing.T) {
		_, err := model.NewRepoRef(10, "widget", "widget")
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := model.NewRepoRef(0, "acme/widget", "widget")
		gt.Error(t, err)
	})
}

func TestEventValidate(t *testing.T) {
	t.Run("missing installation id fails", func(t *testing.T) {
		events := []model.Event{
			model.InstallationCreated{Account: model.Account{Login: "acme"}},
			model.InstallationDeleted{},
			model.InstallationReposAdded{Account: model.Account{Login: "acme"}},
			model.InstallationReposRemoved{},
			model.ReleasePublished{Owner: "acme", Repo: "widget", Tag: "v1", SourceBranch: "main"},
			model.WorkflowRunCompleted{Owner: "acme", Repo: "widget"},
		}
		for _, ev := range events {
			err := ev.Validate()
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
		}
	})

	t.Run("release requires tag and source branch", func(t *testing.T) {
		ev := model.ReleasePublished{InstallID: 1, Owner: "acme", Repo: "widget", SourceBranch: "main"}
		gt.Error(t, ev.Validate())

		ev.Tag = "v1"
		gt.NoError(t, ev.Validate())

		ev.SourceBranch = ""
		gt.Error(t, ev.Validate())
	})

	t.Run("valid workflow run", func(t *testing.T) {
		ev := model.WorkflowRunCompleted{InstallID: 1, Owner: "acme", Repo: "widget", HeadBranch: "codeql-v1"}
		gt.NoError(t, ev.Validate())
		gt.V(t, ev.EventName()).Equal("workflow_run.completed")
	})
}

func TestManualInputValidate(t *testing.T) {
	t.Run("enable requires owner repo and installation", func(t *testing.T) {
		input := &model.EnableRepositoryInput{Owner: "acme", Repo: "widget"}
		gt.True(t, errors.Is(input.Validate(), types.ErrValidationFailed))

		input.InstallID = 9
		gt.NoError(t, input.Validate())
	})

	t.Run("trigger requires branch", func(t *testing.T) {
		input := &model.TriggerScanInput{Owner: "acme", Repo: "widget", InstallID: 9}
		gt.Error(t, input.Validate())

		input.Branch = "codeql-v1"
		gt.NoError(t, input.Validate())
	})
}

func TestWorkflowRunValidate(t *testing.T) {
	run := &model.WorkflowRun{
		ID:           types.NewWorkflowRunID(),
		Owner:        "acme",
		Repo:         "widget",
		InstallID:    1,
		ReleaseTag:   "v1",
		SourceBranch: "main",
		TempBranch:   "codeql-v1",
	}
	gt.NoError(t, run.Validate())

	run.TempBranch = ""
	gt.Error(t, run.Validate())
}

func TestScanRecordRaw(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	record := &model.ScanRecord{ID: "r1", Timestamp: at, Owner: "acme", Repo: "widget"}

	raw := record.Raw()
	gt.V(t, raw.Timestamp).Equal(at.UnixMicro())
	gt.V(t, raw.ID).Equal("r1")

	var row map[string]any
	gt.NoError(t, json.Unmarshal(gt.R1(json.Marshal(raw)).NoError(t), &row))
	gt.V(t, row["timestamp"]).Equal(float64(at.UnixMicro()))
	gt.V(t, row["owner"]).Equal("acme")
}
