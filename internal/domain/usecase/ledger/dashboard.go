package ledger

import (
	"context"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// GetDashboard returns the user's balances and the whole days left until the nearest unlock
func (u *LedgerUseCase) GetDashboard(ctx context.Context, userID int64) (*usecase.Dashboard, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u.dashboardFor(ctx, user)
}

func (u *LedgerUseCase) dashboardFor(ctx context.Context, user *entity.User) (*usecase.Dashboard, error) {
	now := u.timeProvider.Now()

	unlockAt, err := u.uow.GetInvestmentRepository(ctx).NearestUnlockAfter(ctx, user.ID, now)
	if err != nil {
		u.logger.Error("Failed to find nearest unlock", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	days := 0
	if unlockAt != nil {
		days = entity.DaysUntil(*unlockAt, now)
	}

	return &usecase.Dashboard{
		UserID:          user.ID,
		Available:       user.Available(),
		Trading:         user.Trading(),
		TotalEarned:     user.TotalEarned(),
		DaysUntilUnlock: days,
	}, nil
}
