package ledger

import (
	"context"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// Reinvest moves the whole available balance into trading, opens a locked investment
// and appends an investment transaction, all in one store transaction
func (u *LedgerUseCase) Reinvest(ctx context.Context, userID int64) (*usecase.ReinvestResult, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	var result *usecase.ReinvestResult

	err := u.withinTx(ctx, func(txCtx context.Context) error {
		userRepo := u.uow.GetUserRepository(txCtx)

		user, err := userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		amount, err := user.Reinvest(u.timeProvider)
		if err != nil {
			return err
		}

		if err := userRepo.Update(txCtx, user); err != nil {
			return err
		}

		investment, err := entity.NewInvestment(user.ID, amount, u.policy.LockPeriod, u.timeProvider)
		if err != nil {
			return err
		}
		if err := u.uow.GetInvestmentRepository(txCtx).Create(txCtx, investment); err != nil {
			return err
		}

		transaction, err := entity.NewTransaction(user.ID, entity.KindInvestment, amount, entity.DescriptionReinvestment, u.timeProvider)
		if err != nil {
			return err
		}
		if err := u.uow.GetTransactionRepository(txCtx).Create(txCtx, transaction); err != nil {
			return err
		}

		result = &usecase.ReinvestResult{
			Amount:   amount,
			UnlockAt: investment.UnlockAt,
		}
		return nil
	})
	if err != nil {
		if errs.IsInsufficientFundsError(err) {
			u.logger.Info("Reinvestment rejected", map[string]any{
				"userId": userID,
				"reason": err.Error(),
			})
		} else {
			u.logger.Error("Failed to reinvest", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Balance reinvested", map[string]any{
		"userId":   userID,
		"amount":   entity.FormatAmount(result.Amount),
		"unlockAt": result.UnlockAt,
	})

	return result, nil
}
