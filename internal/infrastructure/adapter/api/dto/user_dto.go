package dto

import (
	"time"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// DashboardResponse represents the API response for a user's balances
type DashboardResponse struct {
	UserID          int64  `json:"userId"`
	Available       string `json:"available"`
	Trading         string `json:"trading"`
	TotalEarned     string `json:"totalEarned"`
	DaysUntilUnlock int    `json:"daysUntilUnlock"`
}

// ReferralStatsResponse represents the API response for a user's referral network
type ReferralStatsResponse struct {
	UserID      int64  `json:"userId"`
	Level1Count int64  `json:"level1Count"`
	Level2Count int64  `json:"level2Count"`
	TotalEarned string `json:"totalEarned"`
}

// HistoryEntryResponse is one line of a user's transaction history
type HistoryEntryResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryResponse represents the API response for a user's transaction history
type HistoryResponse struct {
	UserID  int64                  `json:"userId"`
	Entries []HistoryEntryResponse `json:"entries"`
}

// NewDashboardResponse maps a dashboard to its API shape
func NewDashboardResponse(d *usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		UserID:          d.UserID,
		Available:       entity.FormatAmount(d.Available),
		Trading:         entity.FormatAmount(d.Trading),
		TotalEarned:     entity.FormatAmount(d.TotalEarned),
		DaysUntilUnlock: d.DaysUntilUnlock,
	}
}

// NewReferralStatsResponse maps referral stats to their API shape
func NewReferralStatsResponse(userID int64, s *usecase.ReferralStats) ReferralStatsResponse {
	return ReferralStatsResponse{
		UserID:      userID,
		Level1Count: s.Level1Count,
		Level2Count: s.Level2Count,
		TotalEarned: entity.FormatAmount(s.TotalEarned),
	}
}

// NewHistoryResponse maps history entries to their API shape
func NewHistoryResponse(userID int64, entries []usecase.HistoryEntry) HistoryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:          e.Transaction.ID,
			Kind:        string(e.Transaction.Kind),
			Category:    e.Category.String(),
			Amount:      entity.FormatAmount(e.Transaction.Amount),
			Description: e.Transaction.Description,
			CreatedAt:   e.Transaction.CreatedAt,
		})
	}
	return HistoryResponse{UserID: userID, Entries: out}
}
