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

// AdminIDHeader identifies the calling administrator
const AdminIDHeader = "X-Admin-ID"

// AdminHandler serves the privileged endpoints; authorization itself is left to the use case
type AdminHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		ledger: ledger,
		logger: logger,
	}
}

// AccrueDailyProfit handles POST /api/v1/admin/daily-profit
func (h *AdminHandler) AccrueDailyProfit(c *gin.Context) {
	callerID, ok := callerIDHeader(c)
	if !ok {
		return
	}

	result, err := h.ledger.AccrueDailyProfit(c.Request.Context(), callerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.Info("Daily profit triggered over HTTP", map[string]any{
		"callerId":      callerID,
		"usersAffected": result.UsersAffected,
		"failed":        len(result.FailedUserIDs),
	})

	c.JSON(http.StatusOK, dto.NewAccrualResponse(result))
}

// GetLedgerStats handles GET /api/v1/admin/stats
func (h *AdminHandler) GetLedgerStats(c *gin.Context) {
	callerID, ok := callerIDHeader(c)
	if !ok {
		return
	}

	stats, err := h.ledger.GetLedgerStats(c.Request.Context(), callerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLedgerStatsResponse(stats))
}

func callerIDHeader(c *gin.Context) (int64, bool) {
	callerID, err := strconv.ParseInt(c.GetHeader(AdminIDHeader), 10, 64)
	if err != nil || callerID <= 0 {
		_ = c.Error(domainerr.NewUnauthorizedError(0, "call admin endpoints without "+AdminIDHeader))
		return 0, false
	}
	return callerID, true
}
