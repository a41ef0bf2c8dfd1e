package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/board-bot-discord/internal/config"
	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/rulesets"
	"github.com/KirkDiggler/board-bot-discord/internal/handlers/discord"
	"github.com/KirkDiggler/board-bot-discord/internal/repositories/results"
	"github.com/KirkDiggler/board-bot-discord/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Discord.Token) > 12 {
		log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	}
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	log.Printf("Command prefix: %s", cfg.Discord.CommandPrefix)
	if cfg.Game.Seed != 0 {
		log.Printf("Dice seed pinned to %d", cfg.Game.Seed)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	providerConfig := &services.ProviderConfig{
		RoomFactory: discord.NewRoomFactory(dg),
		Timing: engine.Timing{
			TurnDelay:       cfg.Game.TurnDelay,
			CardDelay:       cfg.Game.CardDelay,
			RollTimeout:     cfg.Game.RollTimeout,
			PurchaseTimeout: cfg.Game.PurchaseTimeout,
			AuctionTimeout:  cfg.Game.AuctionTimeout,
			TimeLimit:       cfg.Game.TimeLimit,
		},
		Seed: cfg.Game.Seed,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory results")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory results")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")
				providerConfig.ResultsRepository = results.NewRedisRepository(&results.RedisRepoConfig{
					Client:    redisClient,
					ResultTTL: cfg.Redis.ResultTTL,
				})
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory results")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		GameService:    serviceProvider.GameService,
		Prefix:         cfg.Discord.CommandPrefix,
		DefaultRuleset: rulesets.TradeKey,
	})

	dg.AddHandler(discord.RecoverMiddleware("message", handler.HandleMessageCreate))

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Stop running games while the session can still post their final messages
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := serviceProvider.GameService.Close(shutdownCtx); err != nil {
		log.Printf("Error stopping games: %v", err)
	}
	cancel()

	if err := dg.Close(); err != nil {
		log.Printf("Failed to close Discord connection: %v", err)
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
