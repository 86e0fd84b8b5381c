package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/utils/errutil"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

func TestHandleError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", errors.New("test error"))
	})

	t.Run("goerr with values and request id", func(t *testing.T) {
		_, ctx := logging.CtxRequestID(context.Background())
		err := goerr.New("push failed", goerr.V("owner", "acme"), goerr.V("repo", "widget"))
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		errutil.HandleError(context.Background(), "test message", nil)
	})
}
