package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
)

// exportScanRecord streams one analytics row per completed scan cycle when
// BigQuery is configured
func (x *UseCase) exportScanRecord(ctx context.Context, run *model.WorkflowRun, report *model.Report, alerts []*model.Alert) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	record := model.NewScanRecord(run, report, alerts)
	schema, err := createOrUpdateBigQueryTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record.Raw()); err != nil {
		return goerr.Wrap(err, "failed to insert scan record", goerr.V("reportID", report.ID))
	}
	return nil
}

func (x *UseCase) archiveReport(ctx context.Context, report *model.Report) error {
	archive := x.clients.ReportArchive()
	if archive == nil {
		return nil
	}

	return archive.PutReport(ctx, report)
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.ScanRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer scan record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
			TimePartitioning: &bigquery.TimePartitioning{
				Field: "timestamp",
				Type:  bigquery.DayPartitioningType,
			},
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
