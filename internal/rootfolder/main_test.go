package rootfolder_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wjohnson5/Radarr/internal/db"
	"github.com/wjohnson5/Radarr/internal/rootfolder"
	"github.com/wjohnson5/Radarr/internal/xlog"
)

type Tester struct {
	logger   *slog.Logger
	dbClient *db.Client
}

func newTester(t *testing.T) Tester {
	t.Helper()

	dbClient, err := db.NewClient(db.DSNMemory, db.WithNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Truncate(dbClient, &db.RootFolder{}, &db.MediaFile{}))
		dbClient.Close()
	})
	require.NoError(t, dbClient.Migrate())

	return Tester{
		logger:   xlog.Nop(),
		dbClient: dbClient,
	}
}

func (tester Tester) getService(
	disk rootfolder.DiskProvider,
	inventory rootfolder.Inventory,
	recycleBin rootfolder.RecycleBinProvider,
) *rootfolder.Service {
	return rootfolder.NewService(
		tester.logger,
		disk,
		rootfolder.NewDBRepository(tester.dbClient),
		inventory,
		recycleBin,
	)
}
