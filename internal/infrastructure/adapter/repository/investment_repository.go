package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/model"
)

// InvestmentRepository implements InvestmentRepository interface using GORM
type InvestmentRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    coreport.Duration
}

// NewInvestmentRepository creates a new InvestmentRepository instance
func NewInvestmentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout coreport.Duration) *InvestmentRepository {
	return &InvestmentRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

// Create inserts a new investment and sets its ID
func (r *InvestmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	investmentModel := model.Investment{
		UserID:    investment.UserID,
		Amount:    investment.Amount,
		StartedAt: investment.StartedAt,
		UnlockAt:  investment.UnlockAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&investmentModel).Error; err != nil {
		r.logger.Error("Failed to create investment", map[string]any{
			"user_id": investment.UserID,
			"error":   err.Error(),
		})
		return r.errorClassifier.MapError(err, "creating investment", EntityTypeInvestment)
	}

	investment.ID = investmentModel.ID
	r.logger.Debug("Investment recorded", map[string]any{
		"investment_id": investment.ID,
		"user_id":       investment.UserID,
		"unlock_at":     investment.UnlockAt,
	})
	return nil
}

// NearestUnlockAfter returns the earliest unlock time strictly after the given instant
func (r *InvestmentRepository) NearestUnlockAfter(ctx context.Context, userID int64, after time.Time) (*time.Time, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var unlockAt sql.NullTime
	err := r.db.WithContext(ctx).Model(&model.Investment{}).
		Select("MIN(unlock_at)").
		Where("user_id = ? AND unlock_at > ?", userID, after).
		Scan(&unlockAt).Error
	if err != nil {
		r.logger.Error("Failed to find nearest unlock", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, "finding nearest unlock", EntityTypeInvestment)
	}

	if !unlockAt.Valid {
		return nil, nil
	}
	t := unlockAt.Time
	return &t, nil
}
