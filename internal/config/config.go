package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Game    GameConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token         string
	AppID         string
	CommandPrefix string
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps
// results in memory.
type RedisConfig struct {
	URL       string
	ResultTTL time.Duration
}

// GameConfig holds the pacing shared by every board game the bot hosts
type GameConfig struct {
	TurnDelay       time.Duration
	CardDelay       time.Duration
	RollTimeout     time.Duration
	PurchaseTimeout time.Duration
	AuctionTimeout  time.Duration
	TimeLimit       time.Duration

	// Seed pins the random source of every game; zero seeds from the clock
	Seed int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:         os.Getenv("DISCORD_TOKEN"),
			AppID:         os.Getenv("DISCORD_APP_ID"),
			CommandPrefix: getEnvOrDefault("COMMAND_PREFIX", "!"),
		},
		Redis: RedisConfig{
			URL:       os.Getenv("REDIS_URL"),
			ResultTTL: getEnvAsDurationOrDefault("REDIS_RESULT_TTL", 30*24*time.Hour),
		},
		Game: GameConfig{
			TurnDelay:       getEnvAsDurationOrDefault("BOARD_TURN_DELAY", 2*time.Second),
			CardDelay:       getEnvAsDurationOrDefault("BOARD_CARD_DELAY", 3*time.Second),
			RollTimeout:     getEnvAsDurationOrDefault("BOARD_ROLL_TIMEOUT", 60*time.Second),
			PurchaseTimeout: getEnvAsDurationOrDefault("BOARD_PURCHASE_TIMEOUT", 30*time.Second),
			AuctionTimeout:  getEnvAsDurationOrDefault("BOARD_AUCTION_TIMEOUT", 15*time.Second),
			TimeLimit:       getEnvAsDurationOrDefault("BOARD_TIME_LIMIT", 45*time.Minute),
			Seed:            getEnvAsInt64OrDefault("RNG_SEED", 0),
		},
	}

	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Game.AuctionTimeout <= 0 || cfg.Game.PurchaseTimeout <= 0 || cfg.Game.RollTimeout <= 0 {
		return nil, fmt.Errorf("board timeouts must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
