package ledger

import (
	"context"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// GetHistory returns up to limit of the user's transactions, newest first, with display categories
// A non-positive limit falls back to the default; limits above the maximum are capped
func (u *LedgerUseCase) GetHistory(ctx context.Context, userID int64, limit int) ([]usecase.HistoryEntry, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	limit = u.historyLimit(limit)

	transactions, err := u.uow.GetTransactionRepository(ctx).ListRecentByUser(ctx, userID, limit)
	if err != nil {
		u.logger.Error("Failed to load transaction history", map[string]any{
			"userId": userID,
			"limit":  limit,
			"error":  err.Error(),
		})
		return nil, err
	}

	entries := make([]usecase.HistoryEntry, 0, len(transactions))
	for _, transaction := range transactions {
		entries = append(entries, usecase.HistoryEntry{
			Transaction: transaction,
			Category:    transaction.Category(),
		})
	}

	return entries, nil
}

func (u *LedgerUseCase) historyLimit(limit int) int {
	if limit <= 0 {
		return u.policy.HistoryLimit
	}
	if limit > u.policy.MaxHistoryLimit {
		return u.policy.MaxHistoryLimit
	}
	return limit
}
