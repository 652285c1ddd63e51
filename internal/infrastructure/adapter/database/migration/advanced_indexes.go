package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// indexDefinition is one named CREATE INDEX statement
type indexDefinition struct {
	name string
	sql  string
}

// ledgerIndexes backs the dashboard, history, referral and accrual queries
var ledgerIndexes = []indexDefinition{
	{
		name: "idx_referrals_referrer_level",
		sql:  `CREATE INDEX IF NOT EXISTS idx_referrals_referrer_level ON referrals (referrer_id, level)`,
	},
	{
		name: "idx_transactions_user_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions (user_id, created_at DESC, id DESC)`,
	},
	{
		name: "idx_investments_user_unlock",
		sql:  `CREATE INDEX IF NOT EXISTS idx_investments_user_unlock ON investments (user_id, unlock_at)`,
	},
	{
		name: "idx_users_registered_at",
		sql:  `CREATE INDEX IF NOT EXISTS idx_users_registered_at ON users (registered_at DESC)`,
	},
	{
		name: "idx_users_trading_positive",
		sql:  `CREATE INDEX IF NOT EXISTS idx_users_trading_positive ON users (id) WHERE balance_trading > 0`,
	},
}

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates the composite and partial indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", map[string]any{
		"count": len(ledgerIndexes),
	})

	for _, idx := range ledgerIndexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}

// CreatePerformanceTweaks tunes storage parameters; failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// users rows are rewritten on every reinvest and accrual
		`ALTER TABLE users SET (fillfactor = 90)`,
		`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 500`,
		`ANALYZE users`,
		`ANALYZE transactions`,
	}

	for _, stmt := range tweaks {
		if err := m.db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}

	return nil
}
