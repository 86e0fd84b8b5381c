package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

const DefaultBaseBranch = "main"

type EnableRepositoryInput struct {
	Owner     string                   `json:"owner"`
	Repo      string                   `json:"repo"`
	InstallID types.GitHubAppInstallID `json:"installationId"`
	Tag       string                   `json:"tag,omitempty"`
}

func (x *EnableRepositoryInput) Validate() error {
	if x.Owner == "" || x.Repo == "" || x.InstallID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "owner, repo and installationId are required",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
			goerr.V("installID", x.InstallID),
		)
	}
	return nil
}

type EnableRepositoryOutput struct {
	TempBranch types.BranchName `json:"tempBranch"`
}

type TriggerScanInput struct {
	Owner     string                   `json:"owner"`
	Repo      string                   `json:"repo"`
	Branch    types.BranchName         `json:"branch"`
	InstallID types.GitHubAppInstallID `json:"installationId"`
}

func (x *TriggerScanInput) Validate() error {
	if x.Owner == "" || x.Repo == "" || x.Branch == "" || x.InstallID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "owner, repo, branch and installationId are required",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
			goerr.V("branch", x.Branch),
			goerr.V("installID", x.InstallID),
		)
	}
	return nil
}

// ScanRecord is the analytics row exported per completed scan cycle
type ScanRecord struct {
	ID           string            `json:"id" bigquery:"id"`
	Timestamp    time.Time         `json:"timestamp" bigquery:"timestamp"`
	Owner        string            `json:"owner" bigquery:"owner"`
	Repo         string            `json:"repo" bigquery:"repo"`
	ReleaseTag   string            `json:"release_tag" bigquery:"release_tag"`
	SourceBranch string            `json:"source_branch" bigquery:"source_branch"`
	ReportPath   string            `json:"report_path" bigquery:"report_path"`
	Alerts       []ScanRecordAlert `json:"alerts" bigquery:"alerts"`
}

type ScanRecordAlert struct {
	Number   int64  `json:"number" bigquery:"number"`
	Severity string `json:"severity" bigquery:"severity"`
	RuleID   string `json:"rule_id" bigquery:"rule_id"`
	File     string `json:"file" bigquery:"file"`
	Line     int64  `json:"line" bigquery:"line"`
	State    string `json:"state" bigquery:"state"`
}

func NewScanRecord(run *WorkflowRun, report *Report, alerts []*Alert) *ScanRecord {
	record := &ScanRecord{
		ID:           report.ID.String(),
		Timestamp:    report.CreatedAt,
		Owner:        run.Owner,
		Repo:         run.Repo,
		ReleaseTag:   run.ReleaseTag,
		SourceBranch: run.SourceBranch.String(),
		ReportPath:   report.Path,
		Alerts:       make([]ScanRecordAlert, 0, len(alerts)),
	}
	for _, alert := range alerts {
		record.Alerts = append(record.Alerts, ScanRecordAlert{
			Number:   int64(alert.Number),
			Severity: string(alert.Severity),
			RuleID:   alert.RuleID,
			File:     alert.File,
			Line:     int64(alert.Line),
			State:    alert.State,
		})
	}
	return record
}

// ScanRawRecord is the row actually written. The schema is inferred from
// ScanRecord so timestamp stays a TIMESTAMP column, while the write API
// takes it as epoch microseconds.
type ScanRawRecord struct {
	ScanRecord
	Timestamp int64 `json:"timestamp" bigquery:"timestamp"`
}

func (x *ScanRecord) Raw() *ScanRawRecord {
	return &ScanRawRecord{
		ScanRecord: *x,
		Timestamp:  x.Timestamp.UnixMicro(),
	}
}
