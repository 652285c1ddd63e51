package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    coreport.Duration
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout coreport.Duration) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return entity.RestoreUser(
		userModel.ID,
		userModel.Username,
		userModel.FirstName,
		userModel.ReferrerID,
		entity.Balances{
			Available:   userModel.BalanceAvailable,
			Trading:     userModel.BalanceTrading,
			TotalEarned: userModel.TotalEarned,
		},
		userModel.RegisteredAt,
		userModel.UpdatedAt,
	)
}

// entityToModel converts a user entity to a database model
func (r *UserRepository) entityToModel(user *entity.User) model.User {
	return model.User{
		ID:               user.ID,
		Username:         user.Username,
		FirstName:        user.FirstName,
		BalanceAvailable: user.Available(),
		BalanceTrading:   user.Trading(),
		TotalEarned:      user.TotalEarned(),
		ReferrerID:       user.ReferrerID,
		RegisteredAt:     user.RegisteredAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID int64) error {
	mapped := r.errorClassifier.MapError(err, operation, EntityTypeUser)

	switch {
	case errs.IsUserNotFoundError(mapped):
		r.logger.Debug("User not found", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
	case errs.IsDuplicateError(mapped):
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"user_id":    userID,
			"error":      err.Error(),
			"error_type": string(r.errorClassifier.Classify(err)),
		})
	}

	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetForUpdate retrieves a user with an exclusive row lock held until the transaction ends
func (r *UserRepository) GetForUpdate(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var userModel model.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking user", err, id)
	}

	r.logger.Debug("User row locked", map[string]any{
		"user_id": id,
	})

	return r.modelToEntity(&userModel), nil
}

// Exists checks whether a user with the given ID is registered
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking user", err, id)
	}
	return count > 0, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	userModel := r.entityToModel(user)
	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":     user.ID,
		"referrer_id": user.ReferrerID,
	})
	return nil
}

// Update persists the user's balances
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance_available": user.Available(),
			"balance_trading":   user.Trading(),
			"total_earned":      user.TotalEarned(),
			"updated_at":        user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Debug("User updated successfully", map[string]any{
		"user_id":   user.ID,
		"available": entity.FormatAmount(user.Available()),
		"trading":   entity.FormatAmount(user.Trading()),
	})
	return nil
}

// ListWithTradingBalance returns every user whose trading balance is positive, ordered by ID
func (r *UserRepository) ListWithTradingBalance(ctx context.Context) ([]*entity.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var userModels []model.User
	err := r.db.WithContext(ctx).
		Where("balance_trading > 0").
		Order("id ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing trading users", err, 0)
	}

	return r.modelsToEntities(userModels), nil
}

// ListRecent returns the most recently registered users, newest first
func (r *UserRepository) ListRecent(ctx context.Context, limit int) ([]*entity.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var userModels []model.User
	err := r.db.WithContext(ctx).
		Order("registered_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing recent users", err, 0)
	}

	return r.modelsToEntities(userModels), nil
}

// Totals aggregates user count and balances
func (r *UserRepository) Totals(ctx context.Context) (*persistence.UserTotals, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var row struct {
		TotalUsers    int64
		TotalBalance  decimal.Decimal
		TotalInvested decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COUNT(*) AS total_users, " +
			"COALESCE(SUM(balance_available + balance_trading), 0) AS total_balance, " +
			"COALESCE(SUM(balance_trading), 0) AS total_invested").
		Scan(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating users", err, 0)
	}

	return &persistence.UserTotals{
		TotalUsers:    row.TotalUsers,
		TotalBalance:  row.TotalBalance,
		TotalInvested: row.TotalInvested,
	}, nil
}

func (r *UserRepository) modelsToEntities(userModels []model.User) []*entity.User {
	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users
}
