// Package gcs archives rendered vulnerability reports to Cloud Storage.
package gcs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/interfaces"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
	"google.golang.org/api/option"
)

type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.ReportArchive = (*Client)(nil)

func New(ctx context.Context, bucket, prefix string, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// ObjectName returns <prefix><owner>/<repo>/<report id>.md
func ObjectName(prefix string, report *model.Report) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s/%s/%s.md", prefix, report.Owner, report.Repo, report.ID)
}

func (x *Client) PutReport(ctx context.Context, report *model.Report) error {
	name := ObjectName(x.prefix, report)

	w := x.client.Bucket(x.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "text/markdown; charset=utf-8"
	w.Metadata = map[string]string{
		"owner":  report.Owner,
		"repo":   report.Repo,
		"branch": report.Branch.String(),
		"tag":    report.Tag,
	}

	if _, err := w.Write([]byte(report.Content)); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write report object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close report object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	logging.From(ctx).Info("archived report",
		slog.String("bucket", x.bucket),
		slog.String("object", name),
	)
	return nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
