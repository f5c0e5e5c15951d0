package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/common/uuid"
	"github.com/KirkDiggler/bonedash/internal/config"
	"github.com/KirkDiggler/bonedash/internal/engine"
	"github.com/KirkDiggler/bonedash/internal/handlers/terminal"
	leaderboardRepo "github.com/KirkDiggler/bonedash/internal/repositories/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/KirkDiggler/bonedash/internal/rng"
	"github.com/KirkDiggler/bonedash/internal/services/admin"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/identity"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/messaging"
	"github.com/gdamore/tcell/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal owns stdout, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	logs := logging.New(&logging.Config{
		Output: logFile,
		Level:  cfg.LogLevel,
	})

	if err := run(cfg, logs); err != nil {
		fmt.Fprintf(os.Stderr, "bonedash: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logs *logging.Backend) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sprites load before anything else; a broken asset set never starts a session
	sprites, err := terminal.LoadSprites(terminal.DefaultAssets)
	if err != nil {
		return err
	}

	realClock := &clock.DefaultClock{}
	uuidGen := uuid.New()

	storeLog := logs.Logger(logging.SubsystemStore)

	// A device without a usable store still plays, it just forgets on exit
	store := localstore.OpenFile(&localstore.Config{
		Path: cfg.LocalStorePath,
	}, storeLog)

	identitySvc, err := identity.New(&identity.Config{
		Store:         store,
		Clock:         realClock,
		UUIDGenerator: uuidGen,
		Logger:        storeLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create identity service: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// The game is playable offline; scores just fail to sync
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logs.Logger(logging.SubsystemSync).Warnf("Redis unavailable at %s: %v", cfg.RedisAddr, err)
	}
	cancel()

	// The competition window lives in Redis so the server sees it too
	settings, err := localstore.NewRedis(&localstore.RedisConfig{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create settings store: %w", err)
	}

	competitionStore, err := localstore.NewTiered(&localstore.TieredConfig{
		Shared: settings,
		Local:  store,
		Logger: storeLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create competition store: %w", err)
	}

	competitionSvc, err := competition.New(&competition.Config{
		Store:  competitionStore,
		Clock:  realClock,
		Logger: storeLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create competition service: %w", err)
	}

	repo, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard repository: %w", err)
	}

	leaderboardSvc, err := leaderboard.New(&leaderboard.Config{
		Repository:          repo,
		Clock:               realClock,
		QualifyingRanks:     cfg.QualifyingRanks,
		ScoreUnitsPerSecond: engine.FramesPerSecond,
		Logger:              logs.Logger(logging.SubsystemSync),
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard service: %w", err)
	}

	adminSvc, err := admin.New(&admin.Config{
		Leaderboard: leaderboardSvc,
		Competition: competitionSvc,
		Clock:       realClock,
		AllowList:   cfg.AdminWallets,
		Logger:      logs.Logger(logging.SubsystemAdmin),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin service: %w", err)
	}

	random := rng.New(&rng.Config{})

	messagingSvc, err := messaging.New(&messaging.Config{
		Random: random,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	session, err := engine.NewSession(&engine.SessionConfig{
		Random: random,
		Clock:  realClock,
		Logger: logs.Logger(logging.SubsystemGame),
	})
	if err != nil {
		return fmt.Errorf("failed to create game session: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise screen: %w", err)
	}
	defer screen.Fini()

	loop, err := terminal.NewLoop(&terminal.Config{
		Screen:          screen,
		Session:         session,
		Identity:        identitySvc,
		Leaderboard:     leaderboardSvc,
		Competition:     competitionSvc,
		Admin:           adminSvc,
		Messages:        messagingSvc,
		Clock:           realClock,
		UUIDGenerator:   uuidGen,
		Sprites:         sprites,
		ExportDir:       cfg.ExportDir,
		CompetitionPoll: cfg.CompetitionPollInterval,
		AdminPoll:       cfg.AdminPollInterval,
		Logger:          logs.Logger(logging.SubsystemGame),
	})
	if err != nil {
		return fmt.Errorf("failed to create render loop: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, quit := context.WithCancel(gctx)
	defer quit()

	g.Go(func() error {
		// quitting the game stops the poller too
		defer quit()
		return loop.Run(loopCtx)
	})
	g.Go(func() error {
		return leaderboard.Poll(loopCtx, leaderboardSvc, leaderboard.DefaultPollInterval, logs.Logger(logging.SubsystemSync))
	})

	return g.Wait()
}
