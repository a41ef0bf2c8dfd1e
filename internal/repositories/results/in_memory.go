package results

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

// inMemoryRepository implements Repository for runs without Redis
type inMemoryRepository struct {
	mu      sync.RWMutex
	results map[string]*game.Result
	recent  map[string][]string
	wins    map[string]map[string]int
	names   map[string]string
}

// NewInMemoryRepository creates a new in-memory results repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		results: make(map[string]*game.Result),
		recent:  make(map[string][]string),
		wins:    make(map[string]map[string]int),
		names:   make(map[string]string),
	}
}

func (r *inMemoryRepository) Save(ctx context.Context, result *game.Result) error {
	if err := validate(result); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results[result.GameID] = copyResult(result)

	recent := append([]string{result.GameID}, r.recent[result.Ruleset]...)
	if len(recent) > defaultMaxRecent {
		recent = recent[:defaultMaxRecent]
	}
	r.recent[result.Ruleset] = recent

	if r.wins[result.Ruleset] == nil {
		r.wins[result.Ruleset] = make(map[string]int)
	}
	for _, winner := range result.Winners {
		r.wins[result.Ruleset][winner]++
	}
	for _, standing := range result.Standings {
		r.names[standing.PlayerID] = standing.Name
	}
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, gameID string) (*game.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[gameID]
	if !ok {
		return nil, boarderr.NotFoundf("result %s not found", gameID)
	}
	return copyResult(result), nil
}

func (r *inMemoryRepository) ListRecent(ctx context.Context, ruleset string, limit int) ([]*game.Result, error) {
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.recent[ruleset]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]*game.Result, 0, len(ids))
	for _, id := range ids {
		if result, ok := r.results[id]; ok {
			out = append(out, copyResult(result))
		}
	}
	return out, nil
}

func (r *inMemoryRepository) Top(ctx context.Context, ruleset string, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, len(r.wins[ruleset]))
	for id, wins := range r.wins[ruleset] {
		name := r.names[id]
		if name == "" {
			name = id
		}
		entries = append(entries, &Entry{PlayerID: id, Name: name, Wins: wins})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].PlayerID > entries[j].PlayerID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func copyResult(result *game.Result) *game.Result {
	c := *result
	c.Winners = append([]string(nil), result.Winners...)
	c.Standings = append([]game.Standing(nil), result.Standings...)
	return &c
}
