package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/core"
)

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, logger.Error, ParseGormLogLevel("ERROR"))
	assert.Equal(t, logger.Warn, ParseGormLogLevel("warning"))
	assert.Equal(t, logger.Info, ParseGormLogLevel("debug"))
	assert.Equal(t, logger.Warn, ParseGormLogLevel("unknown"))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	query := func() (string, int64) {
		return `SELECT * FROM "users" WHERE "users"."id" = 42`, 1
	}

	t.Run("slow query is warned", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		timeProvider := mockcore.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(coreport.Duration(500 * time.Millisecond))

		coreLogger.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["table"] == "users" && fields["type"] == "SELECT" && fields["rows"] == int64(1)
		})).Once()

		l := NewDatabaseLogger(coreLogger, timeProvider, "warn", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, nil)
	})

	t.Run("failed query is logged as error with correlation id", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		timeProvider := mockcore.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond))

		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "boom" && fields["correlation_id"] == "req-7"
		})).Once()

		l := NewDatabaseLogger(coreLogger, timeProvider, "error", 200*time.Millisecond)
		ctx := coreport.WithCorrelationID(context.Background(), "req-7")
		l.Trace(ctx, begin, query, errors.New("boom"))
	})

	t.Run("record not found and fast queries are quiet at warn", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		timeProvider := mockcore.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(coreport.Duration(time.Millisecond))

		l := NewDatabaseLogger(coreLogger, timeProvider, "warn", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), begin, query, nil)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		timeProvider := mockcore.NewMockTimeProvider(t)

		l := NewDatabaseLogger(coreLogger, timeProvider, "silent", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, errors.New("boom"))
	})
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "users", extractTableName(`SELECT * FROM "users" WHERE id = 1`))
	assert.Equal(t, "transactions", extractTableName(`INSERT INTO "transactions" ("user_id") VALUES (1)`))
	assert.Equal(t, "referrals", extractTableName(`UPDATE "referrals" SET "earned" = earned + 1`))
	assert.Equal(t, "", extractTableName("BEGIN"))
	assert.Equal(t, "DELETE", extractQueryType(" delete from users"))
}
