package rulesets

import (
	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
)

const TradeKey = "trade"

// Trade is the rent economy: buy streets, collect rent on whole color
// groups and be the first to 5000 or to three complete groups.
func Trade() *game.Definition {
	return &game.Definition{
		Key:         TradeKey,
		Name:        "Trade Town",
		Description: "Buy streets, charge rent, bankrupt your friends.",
		StartSpace:  "Go",
		JailSpace:   "Jail",
		NewBoard:    tradeBoard,
		Cards: []game.CardEffect{
			game.CollectCard{Amount: 150},
			game.CollectCard{Amount: 50},
			game.PayCard{Amount: 50},
			game.PayCard{Amount: 100},
			game.CollectFromEachCard{Amount: 25},
			game.PayEachCard{Amount: 20},
			game.MoveCard{Steps: -3},
			game.AdvanceToCard{Space: "Go"},
			game.AdvanceToCard{Space: "Harbor"},
			game.GoToJailCard{},
			game.EscapeTokenCard{},
		},
		Rules: game.Rules{
			StartingCurrency: 1500,
			PassStartBonus:   200,
			MaxCurrency:      5000,
			JailToll:         50,
			BidIncrement:     5,
			DieCount:         2,
			DieSides:         6,
			MaxDoubles:       3,
			MinPlayers:       2,
			MaxPlayers:       8,
			AggregateByColor: true,
			WinOnColorSets:   3,
			Scoring:          game.ScoreCurrency,
		},
	}
}

func tradeBoard() (*board.Board, error) {
	return board.New(
		[]*board.Space{
			board.Plain("Go", "white"),
			board.RentProperty("Maple Avenue", "brown", 60, board.Fixed(6)),
			board.Action("Chance", "yellow"),
			board.RentProperty("Oak Street", "brown", 60, board.Fixed(8)),
			board.Rent("Tax Office", "gray", board.Fixed(75)),
		},
		[]*board.Space{
			board.Jail("Jail", "orange"),
			board.RentProperty("Pine Street", "lightblue", 100, board.Fixed(10)),
			board.RentProperty("Elm Street", "lightblue", 100, board.Fixed(12)),
			board.Action("Community Chest", "yellow"),
			board.RentProperty("Birch Road", "lightblue", 120, board.Fixed(14)),
		},
		[]*board.Space{
			board.Plain("Free Parking", "white"),
			board.RentProperty("Cedar Lane", "orange", 180, board.Between(15, 30)),
			board.Action("Fortune", "yellow"),
			board.RentProperty("Willow Way", "orange", 200, board.Between(20, 35)),
			board.GoToJail("Go To Jail", "black"),
		},
		[]*board.Space{
			board.RentProperty("Harbor", "green", 260, board.Fixed(30)),
			board.RentProperty("Lighthouse", "green", 280, board.Fixed(35)),
			board.Rent("Luxury Tax", "gray", board.Fixed(100)),
			board.RentProperty("Summit", "blue", 350, board.Fixed(50)),
			board.RentProperty("Crown Heights", "blue", 400, board.Fixed(60)),
		},
	)
}
