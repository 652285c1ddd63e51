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

// ReferralRepository implements ReferralRepository interface using GORM
type ReferralRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    coreport.Duration
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout coreport.Duration) *ReferralRepository {
	return &ReferralRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

func (r *ReferralRepository) modelToEntity(referralModel *model.Referral) *entity.ReferralEdge {
	return &entity.ReferralEdge{
		ID:         referralModel.ID,
		ReferrerID: referralModel.ReferrerID,
		ReferralID: referralModel.ReferralID,
		Level:      entity.ReferralLevel(referralModel.Level),
		Earned:     referralModel.Earned,
		CreatedAt:  referralModel.CreatedAt,
	}
}

// Create inserts a new edge and sets its ID
func (r *ReferralRepository) Create(ctx context.Context, edge *entity.ReferralEdge) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	referralModel := model.Referral{
		ReferrerID: edge.ReferrerID,
		ReferralID: edge.ReferralID,
		Level:      int(edge.Level),
		Earned:     edge.Earned,
		CreatedAt:  edge.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&referralModel).Error; err != nil {
		mapped := r.errorClassifier.MapError(err, "creating referral edge", EntityTypeReferral)
		r.logger.Error("Failed to create referral edge", map[string]any{
			"referrer_id": edge.ReferrerID,
			"referral_id": edge.ReferralID,
			"level":       int(edge.Level),
			"error":       err.Error(),
		})
		return mapped
	}

	edge.ID = referralModel.ID
	r.logger.Debug("Referral edge created", map[string]any{
		"edge_id":     edge.ID,
		"referrer_id": edge.ReferrerID,
		"referral_id": edge.ReferralID,
		"level":       int(edge.Level),
	})
	return nil
}

// ListByReferral returns the incoming edges of a referral, ordered by level
func (r *ReferralRepository) ListByReferral(ctx context.Context, referralID int64) ([]*entity.ReferralEdge, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var referralModels []model.Referral
	err := r.db.WithContext(ctx).
		Where("referral_id = ?", referralID).
		Order("level ASC").
		Find(&referralModels).Error
	if err != nil {
		r.logger.Error("Failed to list referral edges", map[string]any{
			"referral_id": referralID,
			"error":       err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, "listing referral edges", EntityTypeReferral)
	}

	edges := make([]*entity.ReferralEdge, 0, len(referralModels))
	for i := range referralModels {
		edges = append(edges, r.modelToEntity(&referralModels[i]))
	}
	return edges, nil
}

// AddEarned increments the earned amount of an edge
func (r *ReferralRepository) AddEarned(ctx context.Context, edgeID int64, amount decimal.Decimal) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&model.Referral{}).
		Where("id = ?", edgeID).
		Update("earned", gorm.Expr("earned + ?", amount))
	if result.Error != nil {
		r.logger.Error("Failed to credit referral edge", map[string]any{
			"edge_id": edgeID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.MapError(result.Error, "crediting referral edge", EntityTypeReferral)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: referral edge %d does not exist", errs.ErrConstraintViolation, edgeID)
	}
	return nil
}

// SummaryByReferrer counts outgoing edges by level and sums their earned amounts
func (r *ReferralRepository) SummaryByReferrer(ctx context.Context, referrerID int64) (*persistence.ReferralSummary, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeProvider, r.queryTimeout)
	defer cancel()

	var row struct {
		Level1Count int64
		Level2Count int64
		TotalEarned decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Referral{}).
		Select("COUNT(*) FILTER (WHERE level = 1) AS level1_count, "+
			"COUNT(*) FILTER (WHERE level = 2) AS level2_count, "+
			"COALESCE(SUM(earned), 0) AS total_earned").
		Where("referrer_id = ?", referrerID).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to summarize referrals", map[string]any{
			"referrer_id": referrerID,
			"error":       err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, "summarizing referrals", EntityTypeReferral)
	}

	return &persistence.ReferralSummary{
		Level1Count: row.Level1Count,
		Level2Count: row.Level2Count,
		TotalEarned: row.TotalEarned,
	}, nil
}
