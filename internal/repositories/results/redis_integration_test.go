//go:build integration

package results_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
	"github.com/KirkDiggler/board-bot-discord/internal/repositories/results"
	"github.com/KirkDiggler/board-bot-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := results.NewRedisRepository(&results.RedisRepoConfig{
		Client:    client,
		ResultTTL: time.Minute,
		MaxRecent: 2,
	})
	ctx := context.Background()

	save := func(id string, winners ...string) {
		standings := []game.Standing{
			{PlayerID: "alice", Name: "Alice", Label: "A"},
			{PlayerID: "bob", Name: "Bob", Label: "B"},
		}
		for i := range standings {
			for _, w := range winners {
				if standings[i].PlayerID == w {
					standings[i].Winner = true
				}
			}
		}
		require.NoError(t, repo.Save(ctx, &game.Result{
			GameID:    id,
			Ruleset:   "trade",
			Winners:   winners,
			Standings: standings,
			Reason:    "time is up",
			EndedAt:   time.Now().UTC().Truncate(time.Millisecond),
		}))
	}

	save("g1", "alice")
	save("g2", "bob")
	save("g3", "alice")

	t.Run("get", func(t *testing.T) {
		got, err := repo.Get(ctx, "g2")
		require.NoError(t, err)
		assert.Equal(t, []string{"bob"}, got.Winners)
		assert.True(t, got.IsWinner("bob"))

		_, err = repo.Get(ctx, "missing")
		assert.True(t, boarderr.IsNotFound(err))
	})

	t.Run("recent is capped", func(t *testing.T) {
		recent, err := repo.ListRecent(ctx, "trade", 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "g3", recent[0].GameID)
		assert.Equal(t, "g2", recent[1].GameID)
	})

	t.Run("leaderboard", func(t *testing.T) {
		top, err := repo.Top(ctx, "trade", 10)
		require.NoError(t, err)
		assert.Equal(t, []*results.Entry{
			{PlayerID: "alice", Name: "Alice", Wins: 2},
			{PlayerID: "bob", Name: "Bob", Wins: 1},
		}, top)
	})
}
