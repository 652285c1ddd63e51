// Package testutil starts throwaway PostgreSQL and Redis containers for integration tests.
package testutil

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/time"
)

// TestDatabase represents a migrated PostgreSQL test database
type TestDatabase struct {
	Container    *postgres.PostgresContainer
	Manager      *database.Manager
	Config       *database.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// SetupTestDatabase starts a PostgreSQL container, connects and runs migrations
// Skipped under -short
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ledger_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "invest-ledger-repository",
			"test-name": t.Name(),
		}),
	)
	require.NoError(t, err)

	testDB := &TestDatabase{
		Container:    container,
		Logger:       logger.NewNoopLogger(),
		TimeProvider: timeprovider.NewRealTimeProvider(),
	}
	t.Cleanup(func() {
		testDB.cleanup(t)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNumber, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	cfg := database.DefaultConfig()
	cfg.Host = host
	cfg.Port = portNumber
	cfg.Username = "test_user"
	cfg.Password = "test_password"
	cfg.Database = "ledger_test"
	cfg.LogLevel = "silent"
	cfg.MonitorInterval = 0
	require.NoError(t, cfg.Validate())
	testDB.Config = cfg

	testDB.Manager = database.NewManager(cfg, testDB.Logger, testDB.TimeProvider)
	_, err = testDB.Manager.Connect(ctx)
	require.NoError(t, err)
	require.NoError(t, testDB.Manager.Migrate(ctx))

	return testDB
}

// UnitOfWork returns a unit of work bound to the test database
func (td *TestDatabase) UnitOfWork() *database.UnitOfWork {
	return td.Manager.CreateUnitOfWork()
}

// Reset empties every ledger table between tests
func (td *TestDatabase) Reset(t *testing.T) {
	t.Helper()
	err := td.Manager.DB().Exec(
		"TRUNCATE TABLE investments, transactions, referrals, users RESTART IDENTITY CASCADE",
	).Error
	require.NoError(t, err)
}

// cleanup closes the connection and terminates the container; failures are only logged
func (td *TestDatabase) cleanup(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Logf("Panic during container cleanup (recovered): %v", r)
		}
	}()

	if td.Manager != nil {
		if err := td.Manager.Close(); err != nil {
			t.Logf("Warning: failed to close test database connection: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	}
}
