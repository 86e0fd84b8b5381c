package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

const defaultBigQueryTableID = "scans"

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID for scan records",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("CODEQL_FLY_BQ_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-dataset-id",
			Usage:       "BigQuery dataset ID for scan records",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("CODEQL_FLY_BQ_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-table-id",
			Usage:       "BigQuery table ID for scan records",
			Category:    "BigQuery",
			Value:       defaultBigQueryTableID,
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("CODEQL_FLY_BQ_TABLE_ID"),
		},
	}
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}

// NewClient returns nil without error when project or dataset is not set
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if x.projectID == "" || x.datasetID == "" {
		return nil, nil
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID)
	if err != nil {
		return nil, err
	}
	return client, nil
}
