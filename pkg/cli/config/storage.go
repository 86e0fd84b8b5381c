package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket string
	prefix string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket to archive reports",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("CODEQL_FLY_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object name prefix of archived reports",
			Category:    "Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("CODEQL_FLY_STORAGE_PREFIX"),
		},
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
	)
}

// NewArchive returns nil without error when no bucket is set
func (x *Storage) NewArchive(ctx context.Context) (interfaces.ReportArchive, error) {
	if x.bucket == "" {
		return nil, nil
	}

	client, err := gcs.New(ctx, x.bucket, x.prefix)
	if err != nil {
		return nil, err
	}
	return client, nil
}
