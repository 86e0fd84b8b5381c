package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/utils/retry"
)

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds without retry", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
		gt.NoError(t, err)
		gt.V(t, calls).Equal(1)
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		}, retry.WithBaseDelay(time.Millisecond))
		gt.NoError(t, err)
		gt.V(t, calls).Equal(3)
	})

	t.Run("returns last error after retries are exhausted", func(t *testing.T) {
		calls := 0
		errFail := errors.New("permanent")
		err := retry.Do(ctx, func(ctx context.Context) error {
			calls++
			return errFail
		}, retry.WithRetries(2), retry.WithBaseDelay(time.Millisecond))
		gt.True(t, errors.Is(err, errFail))
		gt.V(t, calls).Equal(3)
	})

	t.Run("zero retries runs once", func(t *testing.T) {
		calls := 0
		err := retry.Do(ctx, func(ctx context.Context) error {
			calls++
			return errors.New("fail")
		}, retry.WithRetries(0))
		gt.Error(t, err)
		gt.V(t, calls).Equal(1)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := retry.Do(ctx, func(ctx context.Context) error {
			calls++
			cancel()
			return errors.New("fail")
		}, retry.WithBaseDelay(time.Hour))
		gt.True(t, errors.Is(err, context.Canceled))
		gt.V(t, calls).Equal(1)
	})
}
