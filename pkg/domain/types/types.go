package types

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
)

type (
	RequestID     string
	WorkflowRunID string
	AlertID       string
	ReportID      string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	DatabaseDSN string
)

func NewRequestID() RequestID         { return RequestID(uuid.NewString()) }
func NewWorkflowRunID() WorkflowRunID { return WorkflowRunID(uuid.NewString()) }
func NewAlertID() AlertID             { return AlertID(uuid.NewString()) }
func NewReportID() ReportID           { return ReportID(uuid.NewString()) }

func (x WorkflowRunID) String() string   { return string(x) }
func (x AlertID) String() string         { return string(x) }
func (x ReportID) String() string        { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

// DatabaseDSN carries credentials, so it is never printed as is.
func (x DatabaseDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseDSN) String() string {
	return "***********"
}
