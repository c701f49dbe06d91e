package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"wordy/internal/cache"
	"wordy/internal/clock"
	"wordy/internal/config"
	"wordy/internal/database"
	"wordy/internal/domain"
	"wordy/internal/handler"
	"wordy/internal/repository/sqldb"
	"wordy/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Wordy Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.RequireBot(); err != nil {
		logger.Fatal("Invalid bot config", zap.Error(err))
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Invalid timezone", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("db_type", cfg.Database.Type),
		zap.String("timezone", loc.String()),
	)

	// Connect to database with retries
	dialect, err := database.DialectFor(cfg.Database.Type)
	if err != nil {
		logger.Fatal("Unsupported database", zap.Error(err))
	}
	db, err := database.Connect(dialect, cfg.DialectConfig(), database.DefaultRetryPolicy, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	userRepo := sqldb.NewUserRepo(db)
	wordRepo := sqldb.NewWordRepo(db)
	puzzleRepo := sqldb.NewPuzzleRepo(db)
	pointerRepo := sqldb.NewPointerRepo(db)
	statsRepo := sqldb.NewStatisticsRepo(db)

	// Initialize caches
	clk := clock.NewSystem(loc)
	puzzles := cache.NewTTL[string, *domain.PuzzleState](cfg.Cache.PuzzleTTL, clk)
	targets := cache.NewTTL[int64, domain.TargetWordAnalysis](cfg.Cache.TargetTTL, clk)

	words, err := service.LoadWordStore(wordRepo, targets, logger)
	if err != nil {
		logger.Fatal("Failed to load dictionary", zap.Error(err))
	}
	if words.Index().Len() == 0 {
		logger.Warn("No words seeded, run wordyctl seed")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	statsService := service.NewStatsService(statsRepo, pointerRepo, clk, logger)
	puzzleService := service.NewPuzzleService(words, puzzleRepo, pointerRepo, statsService, puzzles, clk, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, authService, puzzleService, statsService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start cache sweep in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCacheSweep(ctx, cfg.Cache.SweepInterval, logger, puzzles, targets)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// expirer is a cache that can drop its expired entries
type expirer interface {
	Expire() int
}

// runCacheSweep periodically purges expired cache entries
func runCacheSweep(ctx context.Context, interval time.Duration, logger *zap.Logger, caches ...expirer) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cache sweep stopped")
			return
		case <-ticker.C:
			removed := 0
			for _, c := range caches {
				removed += c.Expire()
			}
			if removed > 0 {
				logger.Debug("Expired cache entries removed", zap.Int("removed", removed))
			}
		}
	}
}
