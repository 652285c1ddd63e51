package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    coreport.Duration
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout coreport.Duration) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:      transaction.UserID,
		Kind:        string(transaction.Kind),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          transactionModel.ID,
		UserID:      transactionModel.UserID,
		Kind:        entity.TransactionKind(transactionModel.Kind),
		Amount:      transactionModel.Amount,
		Description: transactionModel.Description,
		CreatedAt:   transactionModel.CreatedAt,
	}
}

// Create appends a transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	transactionModel := r.entityToModel(transaction)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": transaction.UserID,
			"kind":    string(transaction.Kind),
			"error":   err.Error(),
		})
		return r.errorClassifier.MapError(err, "creating transaction", EntityTypeTransaction)
	}

	transaction.ID = transactionModel.ID
	r.logger.Debug("Transaction recorded", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"kind":           string(transaction.Kind),
		"amount":         entity.FormatAmount(transaction.Amount),
	})
	return nil
}

// ListRecentByUser returns at most limit transactions of a user, newest first
func (r *TransactionRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var transactionModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&transactionModels).Error
	if err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"limit":   limit,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, "listing transactions", EntityTypeTransaction)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}
