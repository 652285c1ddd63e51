package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HistoryQuery holds the query parameters of the history endpoint
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// LedgerHandler serves the per-user read endpoints
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetDashboard handles GET /api/v1/users/:userId/dashboard
func (h *LedgerHandler) GetDashboard(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	dashboard, err := h.ledger.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}

// GetReferralStats handles GET /api/v1/users/:userId/referrals
func (h *LedgerHandler) GetReferralStats(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	stats, err := h.ledger.GetReferralStats(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReferralStatsResponse(userID, stats))
}

// GetHistory handles GET /api/v1/users/:userId/history?limit=
func (h *LedgerHandler) GetHistory(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Debug("Invalid history query", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		_ = c.Error(domainerr.ErrInvalidRequest)
		return
	}

	entries, err := h.ledger.GetHistory(c.Request.Context(), userID, query.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(userID, entries))
}

// userIDParam parses the :userId path parameter, attaching ErrInvalidUserID on failure
func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || userID <= 0 {
		_ = c.Error(domainerr.ErrInvalidUserID)
		return 0, false
	}
	return userID, true
}
