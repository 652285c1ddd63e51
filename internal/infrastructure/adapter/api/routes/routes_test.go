package routes_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/usecase"
)

type fakeHealth struct {
	status database.HealthStatus
}

func (f fakeHealth) HealthCheck(context.Context) database.HealthStatus {
	return f.status
}

const testAPIToken = "ops-secret"

func newRouter(t *testing.T, health database.HealthStatus) (*gin.Engine, *mockusecase.MockLedgerUseCase) {
	return newRouterWithToken(t, health, testAPIToken)
}

func newRouterWithToken(t *testing.T, health database.HealthStatus, apiToken string) (*gin.Engine, *mockusecase.MockLedgerUseCase) {
	gin.SetMode(gin.TestMode)

	ledger := mockusecase.NewMockLedgerUseCase(t)
	log := logger.NewNoopLogger()

	router := gin.New()
	routes.SetupMiddlewares(router, log, timeadapter.NewRealTimeProvider())
	routes.SetupRoutes(router, apiToken,
		handler.NewLedgerHandler(ledger, log),
		handler.NewAdminHandler(ledger, log),
		handler.NewHealthHandler(fakeHealth{status: health}),
	)
	return router, ledger
}

// apiRequest builds a request carrying the operator token
func apiRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+testAPIToken)
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var upStatus = database.HealthStatus{Status: database.StatusUp, Latency: "1ms"}

func TestDashboardRoute(t *testing.T) {
	t.Run("returns formatted balances", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().GetDashboard(mock.Anything, int64(42)).Return(&usecase.Dashboard{
			UserID:          42,
			Available:       decimal.RequireFromString("1.5"),
			Trading:         decimal.RequireFromString("100"),
			TotalEarned:     decimal.RequireFromString("3.456"),
			DaysUntilUnlock: 7,
		}, nil)

		rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/42/dashboard"))

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, dto.DashboardResponse{
			UserID:          42,
			Available:       "1.50",
			Trading:         "100.00",
			TotalEarned:     "3.46",
			DaysUntilUnlock: 7,
		}, body)
	})

	t.Run("rejects a malformed user id without calling the ledger", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/abc/dashboard"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeInvalidUserID, decodeError(t, rec).Code)
	})

	t.Run("maps unknown users to 404", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().GetDashboard(mock.Anything, int64(7)).Return(nil, domainerr.ErrUserNotFound)

		rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/7/dashboard"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, domainerr.CodeUserNotFound, body.Code)
		assert.Equal(t, "user not found", body.Message)
	})

	t.Run("hides store failure details", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().GetDashboard(mock.Anything, int64(7)).
			Return(nil, domainerr.NewStoreError("get user", errors.New("dial tcp 10.0.0.1:5432: refused")))

		rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/7/dashboard"))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, domainerr.CodeStoreUnavailable, body.Code)
		assert.Equal(t, "Service Unavailable", body.Message)
	})
}

func TestReferralStatsRoute(t *testing.T) {
	router, ledger := newRouter(t, upStatus)
	ledger.EXPECT().GetReferralStats(mock.Anything, int64(5)).Return(&usecase.ReferralStats{
		Level1Count: 3,
		Level2Count: 1,
		TotalEarned: decimal.RequireFromString("12.5"),
	}, nil)

	rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/5/referrals"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.ReferralStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.UserID)
	assert.Equal(t, int64(3), body.Level1Count)
	assert.Equal(t, int64(1), body.Level2Count)
	assert.Equal(t, "12.50", body.TotalEarned)
}

func TestHistoryRoute(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("passes the limit through", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		tx := &entity.Transaction{
			ID:          9,
			UserID:      5,
			Kind:        entity.KindDaily,
			Amount:      decimal.RequireFromString("1"),
			Description: entity.DescriptionDailyProfit,
			CreatedAt:   created,
		}
		ledger.EXPECT().GetHistory(mock.Anything, int64(5), 3).Return([]usecase.HistoryEntry{
			{Transaction: tx, Category: tx.Category()},
		}, nil)

		rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/5/history?limit=3"))

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.HistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Entries, 1)
		assert.Equal(t, int64(9), body.Entries[0].ID)
		assert.Equal(t, "daily", body.Entries[0].Kind)
		assert.Equal(t, "1.00", body.Entries[0].Amount)
		assert.True(t, created.Equal(body.Entries[0].CreatedAt))
	})

	t.Run("missing limit means default", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().GetHistory(mock.Anything, int64(5), 0).Return([]usecase.HistoryEntry{}, nil)

		rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/5/history"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":5,"entries":[]}`, rec.Body.String())
	})

	for _, raw := range []string{"abc", "-1"} {
		t.Run("rejects limit "+raw, func(t *testing.T) {
			router, _ := newRouter(t, upStatus)

			rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/5/history?limit="+raw))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, rec).Code)
		})
	}
}

func TestAdminRoutes(t *testing.T) {
	t.Run("daily profit requires a caller id", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		rec := serve(router, apiRequest(http.MethodPost, "/api/v1/admin/daily-profit"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerr.CodeUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("daily profit runs for the given caller", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().AccrueDailyProfit(mock.Anything, int64(999)).Return(&usecase.AccrualResult{
			TotalAccrued:  decimal.RequireFromString("3"),
			UsersAffected: 2,
		}, nil)

		req := apiRequest(http.MethodPost, "/api/v1/admin/daily-profit")
		req.Header.Set(handler.AdminIDHeader, "999")
		rec := serve(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalAccrued":"3.00","usersAffected":2,"failedUserIds":[]}`, rec.Body.String())
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().AccrueDailyProfit(mock.Anything, int64(5)).
			Return(nil, domainerr.NewUnauthorizedError(5, "accrue daily profit"))

		req := apiRequest(http.MethodPost, "/api/v1/admin/daily-profit")
		req.Header.Set(handler.AdminIDHeader, "5")
		rec := serve(router, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("overlapping run is a conflict", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().AccrueDailyProfit(mock.Anything, int64(999)).Return(nil, domainerr.ErrAccrualInProgress)

		req := apiRequest(http.MethodPost, "/api/v1/admin/daily-profit")
		req.Header.Set(handler.AdminIDHeader, "999")
		rec := serve(router, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domainerr.CodeAccrualInProgress, decodeError(t, rec).Code)
	})

	t.Run("stats", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		registered := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		ledger.EXPECT().GetLedgerStats(mock.Anything, int64(999)).Return(&usecase.LedgerStats{
			TotalUsers:    2,
			TotalBalance:  decimal.RequireFromString("318"),
			TotalInvested: decimal.RequireFromString("300"),
			RecentUsers: []*entity.User{
				entity.RestoreUser(2, "bob", "Bob", nil, entity.Balances{}, registered, registered),
			},
		}, nil)

		req := apiRequest(http.MethodGet, "/api/v1/admin/stats")
		req.Header.Set(handler.AdminIDHeader, "999")
		rec := serve(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.LedgerStatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(2), body.TotalUsers)
		assert.Equal(t, "318.00", body.TotalBalance)
		assert.Equal(t, "300.00", body.TotalInvested)
		require.Len(t, body.RecentUsers, 1)
		assert.Equal(t, "bob", body.RecentUsers[0].Username)
	})
}

func TestHealthRoute(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"up"`)
	})

	t.Run("down", func(t *testing.T) {
		router, _ := newRouter(t, database.HealthStatus{Status: database.StatusDown, Error: "connection refused"})

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "connection refused")
	})
}

func TestRequestID(t *testing.T) {
	t.Run("propagates the caller's id into the request context", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)
		ledger.EXPECT().GetReferralStats(mock.Anything, int64(1)).
			Run(func(ctx context.Context, _ int64) {
				assert.Equal(t, "req-123", coreport.CorrelationID(ctx))
			}).
			Return(&usecase.ReferralStats{}, nil)

		req := apiRequest(http.MethodGet, "/api/v1/users/1/referrals")
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rec := serve(router, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)
	})
}

func TestPanicRecovery(t *testing.T) {
	router, ledger := newRouter(t, upStatus)
	ledger.EXPECT().GetDashboard(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (*usecase.Dashboard, error) {
			panic("boom")
		})

	rec := serve(router, apiRequest(http.MethodGet, "/api/v1/users/1/dashboard"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerr.CodeInternalServer, decodeError(t, rec).Code)
}

func TestAPIToken(t *testing.T) {
	t.Run("forged admin id without token is rejected before the ledger", func(t *testing.T) {
		router, ledger := newRouter(t, upStatus)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/daily-profit", nil)
		req.Header.Set(handler.AdminIDHeader, "777")
		rec := serve(router, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerr.CodeUnauthenticated, decodeError(t, rec).Code)
		ledger.AssertNotCalled(t, "AccrueDailyProfit", mock.Anything, mock.Anything)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer guess")
		req.Header.Set(handler.AdminIDHeader, "999")
		rec := serve(router, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bare token without bearer scheme is rejected", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/5/dashboard", nil)
		req.Header.Set("Authorization", testAPIToken)
		rec := serve(router, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user routes need the token too", func(t *testing.T) {
		router, _ := newRouter(t, upStatus)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/users/5/history", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("without a configured token only health is served", func(t *testing.T) {
		router, _ := newRouterWithToken(t, upStatus, "")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/daily-profit", nil)
		req.Header.Set(handler.AdminIDHeader, "999")
		rec := serve(router, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
