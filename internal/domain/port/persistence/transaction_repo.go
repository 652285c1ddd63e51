package persistence

import (
	"context"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only transaction log
// There is intentionally no update or delete
type TransactionRepository interface {
	// Create appends a transaction and sets its ID
	//
	// Possible errors:
	// - ErrInvalidTransactionKind: If the kind is rejected by the store
	// - ErrConstraintViolation: If the referenced user does not exist
	// - ErrStoreUnavailable: If the store fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListRecentByUser returns at most limit transactions of a user, newest first
	// Ties on created_at are ordered by ID descending
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error)
}
