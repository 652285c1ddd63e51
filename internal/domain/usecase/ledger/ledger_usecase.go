package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// AccrualLockKey is the run lock key held while daily profit is being accrued
const AccrualLockKey = "ledger:accrual"

// Policy holds the tunable numbers of the ledger
type Policy struct {
	DailyRate        decimal.Decimal
	LockPeriod       time.Duration
	HistoryLimit     int
	MaxHistoryLimit  int
	RecentUsersLimit int
	Level1Rate       decimal.Decimal
	Level2Rate       decimal.Decimal
	AccrualLockTTL   time.Duration
}

// DefaultPolicy returns 1% daily profit, a 20 day lock and 10%/5% referral commissions
func DefaultPolicy() Policy {
	return Policy{
		DailyRate:        decimal.RequireFromString("0.01"),
		LockPeriod:       20 * 24 * time.Hour,
		HistoryLimit:     10,
		MaxHistoryLimit:  100,
		RecentUsersLimit: 5,
		Level1Rate:       decimal.RequireFromString("0.10"),
		Level2Rate:       decimal.RequireFromString("0.05"),
		AccrualLockTTL:   10 * time.Minute,
	}
}

// withDefaults fills zero fields from DefaultPolicy
// Commission rates are kept as given: a zero rate switches that level off
func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.DailyRate.IsZero() {
		p.DailyRate = d.DailyRate
	}
	if p.LockPeriod <= 0 {
		p.LockPeriod = d.LockPeriod
	}
	if p.HistoryLimit <= 0 {
		p.HistoryLimit = d.HistoryLimit
	}
	if p.MaxHistoryLimit <= 0 {
		p.MaxHistoryLimit = d.MaxHistoryLimit
	}
	if p.HistoryLimit > p.MaxHistoryLimit {
		p.HistoryLimit = p.MaxHistoryLimit
	}
	if p.RecentUsersLimit <= 0 {
		p.RecentUsersLimit = d.RecentUsersLimit
	}
	if p.AccrualLockTTL <= 0 {
		p.AccrualLockTTL = d.AccrualLockTTL
	}
	return p
}

// commissionRate returns the commission rate for a referral level
func (p Policy) commissionRate(level entity.ReferralLevel) decimal.Decimal {
	switch level {
	case entity.LevelDirect:
		return p.Level1Rate
	case entity.LevelIndirect:
		return p.Level2Rate
	default:
		return decimal.Zero
	}
}

// LedgerUseCase implements the ledger engine
type LedgerUseCase struct {
	uow          persistence.UnitOfWork
	adminGate    auth.AdminGate
	runLock      persistence.RunLock
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       Policy
}

var _ usecase.LedgerUseCase = (*LedgerUseCase)(nil)

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	adminGate auth.AdminGate,
	runLock persistence.RunLock,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy Policy,
) *LedgerUseCase {
	return &LedgerUseCase{
		uow:          uow,
		adminGate:    adminGate,
		runLock:      runLock,
		timeProvider: timeProvider,
		logger:       logger,
		policy:       policy.withDefaults(),
	}
}

// Policy returns the effective policy
func (u *LedgerUseCase) Policy() Policy {
	return u.policy
}

// withinTx runs fn inside one store transaction, rolling back when fn fails
func (u *LedgerUseCase) withinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to roll back transaction", map[string]any{
				"error": rbErr.Error(),
				"cause": err.Error(),
			})
		}
		return err
	}

	return u.uow.Commit(txCtx)
}

// requireAdmin rejects callers outside the administrator set
func (u *LedgerUseCase) requireAdmin(callerID int64, operation string) error {
	if u.adminGate.IsAdmin(callerID) {
		return nil
	}

	u.logger.Warn("Privileged operation denied", map[string]any{
		"callerId":  callerID,
		"operation": operation,
	})
	return errs.NewUnauthorizedError(callerID, operation)
}
