package safe_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/secmon-lab/codeql-fly/pkg/utils/safe"
)

type failCloser struct{ err error }

func (x *failCloser) Close() error { return x.err }

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("close nil", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close error is only logged", func(t *testing.T) {
		safe.Close(&failCloser{err: errors.New("broken pipe")})
		safe.Close(&failCloser{err: io.EOF})
	})
}

func TestRollback(t *testing.T) {
	t.Run("nil transaction", func(t *testing.T) {
		safe.Rollback(nil)
	})
}
