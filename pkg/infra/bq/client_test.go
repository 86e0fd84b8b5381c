package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra/bq"
	"github.com/secmon-lab/codeql-fly/pkg/utils/testutil"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

func newScanRecord() *model.ScanRecord {
	now := time.Now()
	run := &model.WorkflowRun{
		ID:           types.NewWorkflowRunID(),
		Owner:        "octo",
		Repo:         "app",
		ReleaseTag:   "v1.0",
		SourceBranch: "main",
		TempBranch:   "codeql-v1.0",
		CreatedAt:    now,
	}
	report := &model.Report{
		ID:        types.NewReportID(),
		Owner:     "octo",
		Repo:      "app",
		Path:      model.ReportFilePath("v1.0", now),
		CreatedAt: now,
	}
	alerts := []*model.Alert{
		{Number: 1, Severity: types.SeverityHigh, RuleID: "js/xss", File: "a.js", Line: 3, State: "open"},
	}
	return model.NewScanRecord(run, report, alerts)
}

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("insert_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	var schema bigquery.Schema

	t.Run("table does not exist at first", func(t *testing.T) {
		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("create table from scan record", func(t *testing.T) {
		schema = gt.R1(bqs.Infer(&model.ScanRecord{})).NoError(t)
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))
	})

	t.Run("insert record", func(t *testing.T) {
		gt.NoError(t, client.Insert(ctx, schema, newScanRecord().Raw()))
	})

	t.Run("update table keeps schema", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.True(t, bqs.Equal(md.Schema, schema))
		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
			Description: "codeql-fly scan records",
		}, md.ETag))
	})
}

func TestImpersonation(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	serviceAccount := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT")

	ctx := context.Background()

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: serviceAccount,
		Scopes: []string{
			"https://www.googleapis.com/auth/bigquery",
			"https://www.googleapis.com/auth/cloud-platform",
		},
	})
	gt.NoError(t, err)

	tblName := types.BQTableID(time.Now().Format("impersonation_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName, option.WithTokenSource(ts))
	gt.NoError(t, err)

	msg := struct {
		Msg string `bigquery:"Msg"`
	}{
		Msg: "Hello, BigQuery: " + time.Now().String(),
	}

	schema := gt.R1(bqs.Infer(msg)).NoError(t)

	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, msg))
}
