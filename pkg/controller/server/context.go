package server

import (
	"context"

	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

// DetachContext returns a context that is never canceled but keeps the
// logger, request ID and time function of ctx. Webhook handlers run on it so
// a client hanging up does not abort a scan cycle halfway.
func DetachContext(ctx context.Context) context.Context {
	return logging.InheritContextValues(
		logging.With(context.Background(), logging.From(ctx)),
		ctx,
	)
}
