package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database/testutil"
)

func TestMigrateAllIntegration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()
	db := testDB.Manager.DB()

	mgr := migration.NewMigrationManager(db, testDB.Logger, testDB.TimeProvider)

	version, err := mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	// Re-running is a no-op at the current version
	require.NoError(t, mgr.MigrateAll(ctx))

	var versions int64
	require.NoError(t, db.Table("migration_versions").Count(&versions).Error)
	assert.Equal(t, int64(1), versions)

	for _, table := range []string{"users", "referrals", "transactions", "investments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	for _, index := range []string{"idx_transactions_user_created", "idx_users_trading_positive", "idx_referrals_edge"} {
		var count int64
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM pg_indexes WHERE indexname = ?", index).Scan(&count).Error)
		assert.Equal(t, int64(1), count, index)
	}
	assert.True(t, db.Migrator().HasConstraint("referrals", "chk_referrals_not_self"))
	assert.True(t, db.Migrator().HasConstraint("transactions", "chk_transactions_kind"))
}
