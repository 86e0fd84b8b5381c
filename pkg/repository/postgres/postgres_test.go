package postgres_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/repository/postgres"
	"github.com/secmon-lab/codeql-fly/pkg/repository/testhelper"
	"github.com/secmon-lab/codeql-fly/pkg/utils/testutil"
)

func TestPostgresRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	ctx := context.Background()
	repo, err := postgres.New(ctx, types.DatabaseDSN(dsn))
	gt.NoError(t, err)
	t.Cleanup(func() { gt.NoError(t, repo.Close()) })

	gt.NoError(t, repo.Migrate(ctx))
	// schema statements are idempotent
	gt.NoError(t, repo.Migrate(ctx))

	testhelper.TestAll(t, repo)
}
