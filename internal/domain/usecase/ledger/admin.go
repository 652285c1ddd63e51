package ledger

import (
	"context"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// GetLedgerStats returns user count, balance totals and the latest registrations
func (u *LedgerUseCase) GetLedgerStats(ctx context.Context, callerID int64) (*usecase.LedgerStats, error) {
	if err := u.requireAdmin(callerID, "view ledger stats"); err != nil {
		return nil, err
	}

	userRepo := u.uow.GetUserRepository(ctx)

	totals, err := userRepo.Totals(ctx)
	if err != nil {
		u.logger.Error("Failed to aggregate ledger totals", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	recent, err := userRepo.ListRecent(ctx, u.policy.RecentUsersLimit)
	if err != nil {
		u.logger.Error("Failed to list recent users", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return &usecase.LedgerStats{
		TotalUsers:    totals.TotalUsers,
		TotalBalance:  totals.TotalBalance,
		TotalInvested: totals.TotalInvested,
		RecentUsers:   recent,
	}, nil
}

// GetUserInfo returns everything an administrator sees about one user
func (u *LedgerUseCase) GetUserInfo(ctx context.Context, callerID, userID int64) (*usecase.UserInfo, error) {
	if err := u.requireAdmin(callerID, "view user info"); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard, err := u.dashboardFor(ctx, user)
	if err != nil {
		return nil, err
	}

	referrals, err := u.GetReferralStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.UserInfo{
		User:      user,
		Dashboard: dashboard,
		Referrals: referrals,
	}, nil
}
