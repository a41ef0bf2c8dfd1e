package results

//go:generate mockgen -destination=mock/mock_repository.go -package=mockresults -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

// Entry is one line of a leaderboard
type Entry struct {
	PlayerID string
	Name     string
	Wins     int
}

// Repository stores finished games and the win counts built from them
type Repository interface {
	// Save stores a result and credits a win to each winner
	Save(ctx context.Context, result *game.Result) error

	// Get retrieves a result by game id
	Get(ctx context.Context, gameID string) (*game.Result, error)

	// ListRecent returns the latest results of a ruleset, newest first
	ListRecent(ctx context.Context, ruleset string, limit int) ([]*game.Result, error)

	// Top returns the players with the most wins in a ruleset
	Top(ctx context.Context, ruleset string, limit int) ([]*Entry, error)
}

func validate(result *game.Result) error {
	if result == nil {
		return boarderr.InvalidArgument("result cannot be nil")
	}
	if result.GameID == "" {
		return boarderr.InvalidArgument("result game id cannot be empty")
	}
	if result.Ruleset == "" {
		return boarderr.InvalidArgument("result ruleset cannot be empty")
	}
	return nil
}
