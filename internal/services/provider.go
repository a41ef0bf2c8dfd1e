package services

import (
	"github.com/benbjohnson/clock"

	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	"github.com/KirkDiggler/board-bot-discord/internal/repositories/results"
	gameService "github.com/KirkDiggler/board-bot-discord/internal/services/game"
)

// Provider holds all service instances
type Provider struct {
	GameService gameService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ResultsRepository results.Repository
	RoomFactory       gameService.RoomFactory
	Timing            engine.Timing
	Seed              int64
	Clock             clock.Clock
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	resultsRepo := cfg.ResultsRepository
	if resultsRepo == nil {
		resultsRepo = results.NewInMemoryRepository()
	}

	gameSvc := gameService.NewService(&gameService.ServiceConfig{
		Repository:  resultsRepo,
		RoomFactory: cfg.RoomFactory,
		Timing:      cfg.Timing,
		Seed:        cfg.Seed,
		Clock:       cfg.Clock,
	})

	return &Provider{
		GameService: gameSvc,
	}
}
