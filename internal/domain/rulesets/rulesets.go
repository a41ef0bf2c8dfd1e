package rulesets

import (
	"sort"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
)

// registry holds the built-in games keyed by Definition.Key
var registry = map[string]func() *game.Definition{
	TradeKey:    Trade,
	SurvivalKey: Survival,
}

// Get returns a fresh definition for key
func Get(key string) (*game.Definition, bool) {
	fn, ok := registry[key]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Keys returns the registered keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// All returns a fresh definition of every built-in game, sorted by key
func All() []*game.Definition {
	keys := Keys()
	defs := make([]*game.Definition, len(keys))
	for i, key := range keys {
		defs[i] = registry[key]()
	}
	return defs
}
