package game

import (
	"sort"
	"time"
)

// Standing is one player's final position
type Standing struct {
	PlayerID   string
	Name       string
	Label      string
	Currency   int
	Properties int
	Eliminated bool
	Winner     bool
}

// Result is the outcome of a finished game
type Result struct {
	GameID    string
	Ruleset   string
	Winners   []string
	Standings []Standing
	Reason    string
	Rounds    int
	StartedAt time.Time
	EndedAt   time.Time
}

// IsWinner reports whether playerID won
func (r *Result) IsWinner(playerID string) bool {
	for _, id := range r.Winners {
		if id == playerID {
			return true
		}
	}
	return false
}

func (e *Engine) result(winners []*Player, reason string) *Result {
	ids := make([]string, len(winners))
	for i, w := range winners {
		ids[i] = w.ID
	}

	return &Result{
		GameID:    e.id,
		Ruleset:   e.def.Key,
		Winners:   ids,
		Standings: e.standings(winners),
		Reason:    reason,
		Rounds:    e.round,
		StartedAt: e.startedAt,
		EndedAt:   e.clock.Now(),
	}
}

// standings orders players winners first, then survivors, then by currency
func (e *Engine) standings(winners []*Player) []Standing {
	won := make(map[*Player]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}

	out := make([]Standing, len(e.players))
	for i, p := range e.players {
		out[i] = Standing{
			PlayerID:   p.ID,
			Name:       p.Name,
			Label:      p.Label,
			Currency:   p.Currency,
			Properties: len(p.Properties),
			Eliminated: p.Eliminated,
			Winner:     won[p],
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Winner != out[j].Winner {
			return out[i].Winner
		}
		if out[i].Eliminated != out[j].Eliminated {
			return !out[i].Eliminated
		}
		return out[i].Currency > out[j].Currency
	})
	return out
}
