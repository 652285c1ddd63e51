package routes

import (
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// APIPrefix is the version prefix of every ledger route
const APIPrefix = "/api/v1"

// SetupRoutes configures all the routes for the API
// Ledger routes sit behind the API token and are not registered at all without one
func SetupRoutes(
	router *gin.Engine,
	apiToken string,
	ledgerHandler *handler.LedgerHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	if apiToken == "" {
		return
	}

	api := router.Group(APIPrefix, middleware.APIToken(apiToken))

	users := api.Group("/users/:userId")
	{
		users.GET("/dashboard", ledgerHandler.GetDashboard)
		users.GET("/referrals", ledgerHandler.GetReferralStats)
		users.GET("/history", ledgerHandler.GetHistory)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/daily-profit", adminHandler.AccrueDailyProfit)
		admin.GET("/stats", adminHandler.GetLedgerStats)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// RequestID first so the other two can log the id
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
}
