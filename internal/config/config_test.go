package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/board-bot-discord/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("BOARD_AUCTION_TIMEOUT", "")
	t.Setenv("RNG_SEED", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.Discord.CommandPrefix)
	assert.Equal(t, 15*time.Second, cfg.Game.AuctionTimeout)
	assert.Equal(t, int64(0), cfg.Game.Seed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("BOARD_AUCTION_TIMEOUT", "5s")
	t.Setenv("BOARD_TIME_LIMIT", "10m")
	t.Setenv("RNG_SEED", "77")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "?", cfg.Discord.CommandPrefix)
	assert.Equal(t, 5*time.Second, cfg.Game.AuctionTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Game.TimeLimit)
	assert.Equal(t, int64(77), cfg.Game.Seed)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroTimeout(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("BOARD_ROLL_TIMEOUT", "0s")

	_, err := config.Load()
	assert.Error(t, err)
}
