package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyWinOnPurchase(t *testing.T) {
	tests := []struct {
		name    string
		rules   func(*Rules)
		owned   []string
		message string
	}{
		{
			name:    "every property",
			rules:   func(r *Rules) { r.WinOnAllProperties = true },
			owned:   []string{"LotA", "LotC", "LotD"},
			message: "Game over: Alice owns every property. Alice wins!",
		},
		{
			name:    "color set",
			rules:   func(r *Rules) { r.WinOnColorSets = 1 },
			owned:   []string{"LotA"},
			message: "Game over: Alice completed red. Alice wins!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDefinition()
			tt.rules(&def.Rules)
			h := newHarness(t, def)
			h.join("Alice", "Bob", "Cara")
			h.own("Alice", tt.owned...)
			h.start()

			h.roll("Alice", 4)
			h.requireTurn("Alice", StateAwaitingPurchase)
			require.True(t, h.cmd("Alice", "buy"))
			h.settle()

			assert.Equal(t, StateEnded, h.e.state)
			assert.Nil(t, h.e.timer, "nothing runs after the game ends")
			require.Equal(t, 1, h.reporter.count())
			assert.Equal(t, []string{"alice"}, h.reporter.results[0].Winners)
			assert.True(t, h.room.contains("Alice buys LotB for 120."))
			assert.True(t, h.room.contains(tt.message))
		})
	}
}

func TestPurchaseShortOfAWinKeepsPlaying(t *testing.T) {
	def := testDefinition()
	def.Rules.WinOnAllProperties = true
	def.Rules.WinOnColorSets = 2
	h := newHarness(t, def)
	h.join("Alice", "Bob")
	h.own("Alice", "LotA")
	h.start()

	h.roll("Alice", 4)
	require.True(t, h.cmd("Alice", "buy"))
	h.settle()

	assert.Equal(t, 0, h.reporter.count())
	h.requireTurn("Bob", StateAwaitingRoll)
}

func TestEliminationTransferCanWinTheGame(t *testing.T) {
	def := testDefinition()
	def.Rules.WinOnColorSets = 1
	h := newHarness(t, def)
	h.join("Bob", "Alice", "Cara")
	h.own("Alice", "LotB")
	h.own("Bob", "LotA")
	h.player("Bob").Currency = 5
	h.start()

	h.roll("Bob", 4)

	assert.Equal(t, StateEnded, h.e.state)
	require.Equal(t, 1, h.reporter.count())
	result := h.reporter.results[0]
	assert.Equal(t, []string{"alice"}, result.Winners)
	assert.Equal(t, "Alice completed red", result.Reason)
	assert.True(t, h.room.contains("Alice takes 1 properties."))
	assert.True(t, h.player("Cara").Eliminated, "losers are eliminated at the end")
}
