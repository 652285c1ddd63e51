package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// AccrueDailyProfit credits the daily rate on every positive trading balance
// Each user is settled in its own transaction; a failing user does not stop the run
func (u *LedgerUseCase) AccrueDailyProfit(ctx context.Context, callerID int64) (*usecase.AccrualResult, error) {
	if err := u.requireAdmin(callerID, "accrue daily profit"); err != nil {
		return nil, err
	}

	token, acquired, err := u.runLock.TryAcquire(ctx, AccrualLockKey, u.policy.AccrualLockTTL)
	if err != nil {
		u.logger.Error("Failed to acquire accrual lock", map[string]any{
			"callerId": callerID,
			"error":    err.Error(),
		})
		return nil, err
	}
	if !acquired {
		u.logger.Warn("Daily accrual already running", map[string]any{
			"callerId": callerID,
		})
		return nil, errs.ErrAccrualInProgress
	}
	defer func() {
		if err := u.runLock.Release(context.WithoutCancel(ctx), AccrualLockKey, token); err != nil {
			u.logger.Warn("Failed to release accrual lock", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	users, err := u.uow.GetUserRepository(ctx).ListWithTradingBalance(ctx)
	if err != nil {
		u.logger.Error("Failed to list users for accrual", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	result := &usecase.AccrualResult{
		TotalAccrued:  decimal.Zero,
		FailedUserIDs: []int64{},
	}

	for i, candidate := range users {
		if ctx.Err() != nil {
			for _, rest := range users[i:] {
				result.FailedUserIDs = append(result.FailedUserIDs, rest.ID)
			}
			u.logger.Warn("Daily accrual interrupted", map[string]any{
				"remaining": len(users) - i,
				"error":     ctx.Err().Error(),
			})
			break
		}

		if !candidate.Trading().IsPositive() {
			continue
		}

		profit, err := u.accrueForUser(ctx, candidate.ID)
		if err != nil {
			u.logger.Error("Failed to accrue daily profit", map[string]any{
				"userId": candidate.ID,
				"error":  err.Error(),
			})
			result.FailedUserIDs = append(result.FailedUserIDs, candidate.ID)
			continue
		}
		if !profit.IsPositive() {
			continue
		}

		result.TotalAccrued = result.TotalAccrued.Add(profit)
		result.UsersAffected++
	}

	u.logger.Info("Daily profit accrued", map[string]any{
		"callerId":      callerID,
		"usersAffected": result.UsersAffected,
		"totalAccrued":  entity.FormatAmount(result.TotalAccrued),
		"failed":        len(result.FailedUserIDs),
	})

	return result, nil
}

// accrueForUser settles one user under a row lock; profit is computed from the locked balance
func (u *LedgerUseCase) accrueForUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	profit := decimal.Zero

	err := u.withinTx(ctx, func(txCtx context.Context) error {
		userRepo := u.uow.GetUserRepository(txCtx)

		user, err := userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		profit = user.ApplyDailyProfit(u.policy.DailyRate, u.timeProvider)
		if !profit.IsPositive() {
			return nil
		}

		if err := userRepo.Update(txCtx, user); err != nil {
			return err
		}

		transaction, err := entity.NewTransaction(user.ID, entity.KindDaily, profit, entity.DescriptionDailyProfit, u.timeProvider)
		if err != nil {
			return err
		}
		return u.uow.GetTransactionRepository(txCtx).Create(txCtx, transaction)
	})
	if err != nil {
		return decimal.Zero, err
	}

	return profit, nil
}
