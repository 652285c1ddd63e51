package dto

import (
	"time"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// AccrualResponse represents the outcome of a daily profit run
type AccrualResponse struct {
	TotalAccrued  string  `json:"totalAccrued"`
	UsersAffected int     `json:"usersAffected"`
	FailedUserIDs []int64 `json:"failedUserIds"`
}

// RecentUserResponse is a short view of a newly registered user
type RecentUserResponse struct {
	UserID       int64     `json:"userId"`
	FirstName    string    `json:"firstName"`
	Username     string    `json:"username,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// LedgerStatsResponse represents the admin overview of the ledger
type LedgerStatsResponse struct {
	TotalUsers    int64                `json:"totalUsers"`
	TotalBalance  string               `json:"totalBalance"`
	TotalInvested string               `json:"totalInvested"`
	RecentUsers   []RecentUserResponse `json:"recentUsers"`
}

// NewAccrualResponse maps an accrual result to its API shape
func NewAccrualResponse(r *usecase.AccrualResult) AccrualResponse {
	failed := r.FailedUserIDs
	if failed == nil {
		failed = []int64{}
	}
	return AccrualResponse{
		TotalAccrued:  entity.FormatAmount(r.TotalAccrued),
		UsersAffected: r.UsersAffected,
		FailedUserIDs: failed,
	}
}

// NewLedgerStatsResponse maps ledger stats to their API shape
func NewLedgerStatsResponse(s *usecase.LedgerStats) LedgerStatsResponse {
	recent := make([]RecentUserResponse, 0, len(s.RecentUsers))
	for _, u := range s.RecentUsers {
		recent = append(recent, RecentUserResponse{
			UserID:       u.ID,
			FirstName:    u.FirstName,
			Username:     u.Username,
			RegisteredAt: u.RegisteredAt,
		})
	}
	return LedgerStatsResponse{
		TotalUsers:    s.TotalUsers,
		TotalBalance:  entity.FormatAmount(s.TotalBalance),
		TotalInvested: entity.FormatAmount(s.TotalInvested),
		RecentUsers:   recent,
	}
}
