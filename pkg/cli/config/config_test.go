package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeql-fly/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestFlags(t *testing.T) {
	testCases := []struct {
		name     string
		flags    []cli.Flag
		expected []string
	}{
		{"github app", (&config.GitHubApp{}).Flags(), []string{"github-app-id", "github-app-private-key", "github-app-secret", "github-api-url"}},
		{"database", (&config.Database{}).Flags(), []string{"db-dsn"}},
		{"firestore", (&config.Firestore{}).Flags(), []string{"firestore-project-id", "firestore-database-id"}},
		{"bigquery", (&config.BigQuery{}).Flags(), []string{"bq-project-id", "bq-dataset-id", "bq-table-id"}},
		{"storage", (&config.Storage{}).Flags(), []string{"storage-bucket", "storage-prefix"}},
		{"dispatch", (&config.Dispatch{}).Flags(), []string{"dispatch-delay", "dispatch-ready-attempts", "dispatch-ready-interval"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			names := flagNames(tc.flags)
			gt.V(t, len(names)).Equal(len(tc.expected))
			for _, name := range tc.expected {
				gt.True(t, names[name])
			}
		})
	}
}

func TestOptionalClients(t *testing.T) {
	ctx := context.Background()

	t.Run("bigquery without project is nil", func(t *testing.T) {
		client, err := (&config.BigQuery{}).NewClient(ctx)
		gt.NoError(t, err)
		gt.V(t, client == nil).Equal(true)
	})

	t.Run("storage without bucket is nil", func(t *testing.T) {
		archive, err := (&config.Storage{}).NewArchive(ctx)
		gt.NoError(t, err)
		gt.V(t, archive == nil).Equal(true)
	})

	t.Run("stores are disabled by default", func(t *testing.T) {
		gt.False(t, (&config.Database{}).Enabled())
		gt.False(t, (&config.Firestore{}).Enabled())
	})
}
