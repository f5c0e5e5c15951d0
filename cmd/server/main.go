package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/bonedash/internal/common/clock"
	"github.com/KirkDiggler/bonedash/internal/common/logging"
	"github.com/KirkDiggler/bonedash/internal/config"
	"github.com/KirkDiggler/bonedash/internal/engine"
	"github.com/KirkDiggler/bonedash/internal/handlers/discord"
	httpHandler "github.com/KirkDiggler/bonedash/internal/handlers/http"
	leaderboardRepo "github.com/KirkDiggler/bonedash/internal/repositories/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/repositories/localstore"
	"github.com/KirkDiggler/bonedash/internal/services/competition"
	"github.com/KirkDiggler/bonedash/internal/services/leaderboard"
	"github.com/KirkDiggler/bonedash/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs := logging.New(&logging.Config{
		Output: os.Stdout,
		Level:  cfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	realClock := &clock.DefaultClock{}

	repo, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create leaderboard repository: %v", err)
	}

	leaderboardSvc, err := leaderboard.New(&leaderboard.Config{
		Repository:          repo,
		Clock:               realClock,
		QualifyingRanks:     cfg.QualifyingRanks,
		ScoreUnitsPerSecond: engine.FramesPerSecond,
		Logger:              logs.Logger(logging.SubsystemSync),
	})
	if err != nil {
		log.Fatalf("Failed to create leaderboard service: %v", err)
	}

	// The server reads the shared competition window from Redis
	settings, err := localstore.NewRedis(&localstore.RedisConfig{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create settings store: %v", err)
	}

	competitionSvc, err := competition.New(&competition.Config{
		Store:  settings,
		Clock:  realClock,
		Logger: logs.Logger(logging.SubsystemStore),
	})
	if err != nil {
		log.Fatalf("Failed to create competition service: %v", err)
	}

	server, err := httpHandler.NewServer(&httpHandler.Config{
		Addr:             cfg.HTTPAddr,
		Leaderboard:      leaderboardSvc,
		Competition:      competitionSvc,
		Clock:            realClock,
		SubmitRatePerMin: cfg.SubmitRatePerMin,
		Logger:           logs.Logger(logging.SubsystemHTTP),
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	g.Go(func() error {
		return leaderboard.Poll(gctx, leaderboardSvc, leaderboard.DefaultPollInterval, logs.Logger(logging.SubsystemSync))
	})

	// Discord is optional
	if cfg.DiscordToken != "" {
		messagingSvc, err := messaging.New(&messaging.Config{})
		if err != nil {
			log.Fatalf("Failed to create messaging service: %v", err)
		}

		bot, err := discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.DiscordApplicationID,
			GuildID:       cfg.DiscordGuildID,
			ChannelID:     cfg.DiscordChannelID,
			Leaderboard:   leaderboardSvc,
			Competition:   competitionSvc,
			Messages:      messagingSvc,
			Logger:        logs.Logger(logging.SubsystemDisc),
		})
		if err != nil {
			log.Fatalf("Failed to create Discord bot: %v", err)
		}

		g.Go(func() error {
			return bot.Run(gctx)
		})
	} else {
		logs.Logger(logging.SubsystemDisc).Info("DISCORD_TOKEN not set, announcer disabled")
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	log.Println("Server has been shut down")
}
