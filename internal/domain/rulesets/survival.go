package rulesets

import (
	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
)

const SurvivalKey = "survival"

// Survival replaces rent with danger: owned territory can knock out anyone
// who wanders in. Claim the whole map or outlast everybody.
func Survival() *game.Definition {
	return &game.Definition{
		Key:         SurvivalKey,
		Name:        "Wild Survival",
		Description: "Claim dangerous ground and hope the others step on it.",
		StartSpace:  "Camp",
		JailSpace:   "Cage",
		NewBoard:    survivalBoard,
		Cards: []game.CardEffect{
			game.CollectCard{Amount: 100},
			game.PayCard{Amount: 75},
			game.CollectFromEachCard{Amount: 50},
			game.MoveCard{Steps: 2},
			game.MoveCard{Steps: -2},
			game.AdvanceToCard{Space: "Oasis"},
			game.GoToJailCard{},
			game.EscapeTokenCard{},
		},
		Rules: game.Rules{
			StartingCurrency:   1000,
			PassStartBonus:     100,
			JailToll:           100,
			BidIncrement:       10,
			DieCount:           2,
			DieSides:           6,
			MaxDoubles:         3,
			MinPlayers:         2,
			MaxPlayers:         6,
			AggregateByColor:   true,
			WinOnAllProperties: true,
			Scoring:            game.ScoreProperties,
		},
	}
}

func survivalBoard() (*board.Board, error) {
	return board.New(
		[]*board.Space{
			board.Plain("Camp", "white"),
			board.EliminationProperty("Swamp", "green", 100, board.Fixed(10)),
			board.Action("Supply Drop", "yellow"),
			board.EliminationProperty("Bog", "green", 120, board.Fixed(15)),
		},
		[]*board.Space{
			board.Jail("Cage", "orange"),
			board.EliminationProperty("Ridge", "gray", 150, board.Between(10, 25)),
			board.Elimination("Rockslide", "brown", board.Between(5, 20)),
			board.EliminationProperty("Cliff", "gray", 160, board.Fixed(20)),
		},
		[]*board.Space{
			board.Plain("Oasis", "white"),
			board.EliminationProperty("Dunes", "khaki", 200, board.Fixed(25)),
			board.Action("Supply Cache", "yellow"),
			board.EliminationProperty("Mirage", "khaki", 220, board.Fixed(30)),
		},
		[]*board.Space{
			board.GoToJail("Ambush", "black"),
			board.EliminationProperty("Thicket", "red", 250, board.Fixed(30)),
			board.Elimination("Quicksand", "brown", board.Fixed(15)),
			board.EliminationProperty("Den", "red", 280, board.Fixed(35)),
		},
	)
}
