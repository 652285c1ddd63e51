package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// GetReferralStats counts the user's referrals per level and sums what they earned
func (u *LedgerUseCase) GetReferralStats(ctx context.Context, userID int64) (*usecase.ReferralStats, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	summary, err := u.uow.GetReferralRepository(ctx).SummaryByReferrer(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to load referral stats", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return &usecase.ReferralStats{
		Level1Count: summary.Level1Count,
		Level2Count: summary.Level2Count,
		TotalEarned: summary.TotalEarned,
	}, nil
}

// CreditReferralCommissions pays each referrer of referralID its level's share of depositAmount
// No inbound flow calls this yet; it is the hook for a future deposit flow
func (u *LedgerUseCase) CreditReferralCommissions(
	ctx context.Context,
	referralID int64,
	depositAmount decimal.Decimal,
) (*usecase.CommissionResult, error) {
	if referralID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !depositAmount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit must be positive", errs.ErrInvalidAmount)
	}

	result := &usecase.CommissionResult{
		TotalCredited: decimal.Zero,
		Credited:      map[int64]decimal.Decimal{},
	}

	err := u.withinTx(ctx, func(txCtx context.Context) error {
		referralRepo := u.uow.GetReferralRepository(txCtx)
		userRepo := u.uow.GetUserRepository(txCtx)
		transactionRepo := u.uow.GetTransactionRepository(txCtx)

		edges, err := referralRepo.ListByReferral(txCtx, referralID)
		if err != nil {
			return err
		}

		for _, edge := range edges {
			commission := entity.RoundAmount(depositAmount.Mul(u.policy.commissionRate(edge.Level)))
			if !commission.IsPositive() {
				continue
			}

			referrer, err := userRepo.GetForUpdate(txCtx, edge.ReferrerID)
			if err != nil {
				return err
			}
			if err := referrer.CreditCommission(commission, u.timeProvider); err != nil {
				return err
			}
			if err := userRepo.Update(txCtx, referrer); err != nil {
				return err
			}
			if err := referralRepo.AddEarned(txCtx, edge.ID, commission); err != nil {
				return err
			}

			description := fmt.Sprintf(entity.DescriptionReferral, edge.Level)
			transaction, err := entity.NewTransaction(referrer.ID, entity.KindReferral, commission, description, u.timeProvider)
			if err != nil {
				return err
			}
			if err := transactionRepo.Create(txCtx, transaction); err != nil {
				return err
			}

			result.Credited[referrer.ID] = result.Credited[referrer.ID].Add(commission)
			result.TotalCredited = result.TotalCredited.Add(commission)
		}
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to credit referral commissions", map[string]any{
			"referralId": referralID,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Referral commissions credited", map[string]any{
		"referralId":    referralID,
		"deposit":       entity.FormatAmount(depositAmount),
		"totalCredited": entity.FormatAmount(result.TotalCredited),
		"referrers":     len(result.Credited),
	})

	return result, nil
}
