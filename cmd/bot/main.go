package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/telegram"
	timeProvider "github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Bot stopped with error: %v", err)
	}
}

func run(cfg *config.Config) error {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	level, err := coreport.ParseLogLevel(cfg.Logger.Level)
	if err != nil {
		return err
	}
	appLogger.SetLevel(level)

	tp := timeProvider.NewRealTimeProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(cfg.DatabaseSettings(), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	adminIDs, err := cfg.AdminIDs()
	if err != nil {
		return err
	}
	adminGate := auth.NewStaticAdminGate(adminIDs)

	policy, err := cfg.LedgerPolicy()
	if err != nil {
		return err
	}

	runLock, closeRunLock, err := newRunLock(ctx, cfg, appLogger, tp)
	if err != nil {
		return err
	}
	defer closeRunLock()

	ledgerUseCase := ledger.NewLedgerUseCase(
		dbManager.CreateUnitOfWork(),
		adminGate,
		runLock,
		tp,
		appLogger,
		policy,
	)

	bot, err := telegram.NewBot(cfg.BotSettings(policy), ledgerUseCase, adminGate, appLogger)
	if err != nil {
		return err
	}

	var server *http.Server
	if cfg.Server.Enabled {
		router := gin.New()
		routes.SetupMiddlewares(router, appLogger, tp)
		if cfg.Server.APIToken == "" {
			appLogger.Warn("server.apiToken is empty, only /health is served", nil)
		}
		routes.SetupRoutes(router, cfg.Server.APIToken,
			handler.NewLedgerHandler(ledgerUseCase, appLogger),
			handler.NewAdminHandler(ledgerUseCase, appLogger),
			handler.NewHealthHandler(dbManager),
		)

		server = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		}

		go func() {
			appLogger.Info("Starting HTTP server", map[string]any{
				"addr": server.Addr,
				"env":  cfg.Environment,
			})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLogger.Error("HTTP server failed", map[string]any{"error": err.Error()})
				stop()
			}
		}()
	}

	botDone := make(chan error, 1)
	go func() {
		botDone <- bot.Run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		appLogger.Info("Shutdown signal received", nil)
	case err := <-botDone:
		// Polling ended on its own; take the rest of the process down with it
		runErr = err
		botDone = nil
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("HTTP server forced to shutdown", map[string]any{"error": err.Error()})
		}
	}

	if botDone != nil {
		select {
		case err := <-botDone:
			if err != nil {
				appLogger.Warn("Bot stopped with error", map[string]any{"error": err.Error()})
			}
		case <-shutdownCtx.Done():
			appLogger.Warn("Bot did not stop in time", nil)
		}
	}

	appLogger.Info("Shutdown complete", nil)
	return runErr
}

// newRunLock picks the Redis run lock when enabled, the in-process one otherwise
func newRunLock(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (persistence.RunLock, func(), error) {
	if !cfg.Redis.Enabled {
		appLogger.Info("Using in-process accrual lock", nil)
		return cache.NewLocalRunLock(tp), func() {}, nil
	}

	client, err := cache.ConnectRedis(ctx, cfg.RedisSettings(), appLogger)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			appLogger.Warn("Failed to close Redis client", map[string]any{"error": err.Error()})
		}
	}
	return cache.NewRedisRunLock(client, appLogger), closeFn, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Bot.Token == "" {
		missingConfigs = append(missingConfigs, "bot.token (or LEDGER_BOT_TOKEN environment variable)")
	}
	if cfg.Bot.PollTimeout <= 0 {
		missingConfigs = append(missingConfigs, "bot.pollTimeout")
	}

	if cfg.Server.Enabled {
		if cfg.Server.Port == 0 {
			missingConfigs = append(missingConfigs, "server.port")
		}
		if cfg.Server.ReadTimeout == 0 {
			missingConfigs = append(missingConfigs, "server.readTimeout")
		}
		if cfg.Server.WriteTimeout == 0 {
			missingConfigs = append(missingConfigs, "server.writeTimeout")
		}
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or LEDGER_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or LEDGER_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or LEDGER_DB_NAME environment variable)")
	}
	if cfg.Database.Password == "" && cfg.Environment == config.Production {
		missingConfigs = append(missingConfigs, "database.password (or LEDGER_DB_PASSWORD environment variable)")
	}

	if cfg.Redis.Enabled && cfg.Redis.Host == "" {
		missingConfigs = append(missingConfigs, "redis.host (or LEDGER_REDIS_HOST environment variable)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if err := cfg.DatabaseSettings().Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	if _, err := cfg.AdminIDs(); err != nil {
		return fmt.Errorf("invalid admin.ids: %w", err)
	}
	if _, err := cfg.LedgerPolicy(); err != nil {
		return err
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Admin.IDs == "" {
			warnings = append(warnings, "admin.ids is empty, nobody can run the daily accrual")
		}
		if !cfg.Redis.Enabled {
			warnings = append(warnings, "redis is disabled, the accrual lock only covers this process")
		}
		if cfg.Server.Enabled && cfg.Server.APIToken == "" {
			warnings = append(warnings, "server.apiToken is empty, the ledger API is not served")
		}
		if cfg.Server.Enabled && cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
