package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	"github.com/KirkDiggler/board-bot-discord/internal/services"
)

type silentRoom struct{}

func (silentRoom) Say(context.Context, string) error { return nil }

func TestNewProvider_FallsBackToInMemoryResults(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{
		RoomFactory: func(string) engine.Room { return silentRoom{} },
	})
	require.NotNil(t, provider.GameService)

	entries, err := provider.GameService.Leaderboard(context.Background(), "trade", 5)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, provider.GameService.Close(context.Background()))
}

func TestNewProvider_RequiresRoomFactory(t *testing.T) {
	assert.Panics(t, func() {
		services.NewProvider(&services.ProviderConfig{})
	})
}
