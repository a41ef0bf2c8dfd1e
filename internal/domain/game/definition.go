package game

import (
	"time"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

// Scoring decides the winners when the time limit runs out
type Scoring int

const (
	ScoreCurrency Scoring = iota
	ScoreProperties
)

const maxJailAttempts = 3

// Rules are the economy and win conditions of a concrete game
type Rules struct {
	StartingCurrency int
	PassStartBonus   int
	// MaxCurrency ends the game as soon as a player holds this much; zero disables it
	MaxCurrency  int
	JailToll     int
	BidIncrement int
	DieCount     int
	DieSides     int
	// MaxDoubles jails a player on this many doubles in one turn; zero disables it
	MaxDoubles int
	MinPlayers int
	MaxPlayers int

	// AggregateByColor sums rent and elimination chance over every space of
	// the landed color owned by the same player
	AggregateByColor   bool
	WinOnAllProperties bool
	WinOnColorSets     int
	Scoring            Scoring
}

func (r Rules) withDefaults() Rules {
	if r.BidIncrement <= 0 {
		r.BidIncrement = 5
	}
	if r.DieCount <= 0 {
		r.DieCount = 2
	}
	if r.DieSides <= 0 {
		r.DieSides = 6
	}
	if r.MinPlayers <= 0 {
		r.MinPlayers = 2
	}
	if r.MaxPlayers <= 0 || r.MaxPlayers > 26 {
		r.MaxPlayers = 26
	}
	return r
}

// Timing is the pacing of a game instance
type Timing struct {
	TurnDelay       time.Duration
	CardDelay       time.Duration
	RollTimeout     time.Duration
	PurchaseTimeout time.Duration
	AuctionTimeout  time.Duration
	// TimeLimit ends the game and scores the leaders; zero disables it
	TimeLimit time.Duration
}

// DefaultTiming is the pacing used when the host does not configure one
func DefaultTiming() Timing {
	return Timing{
		TurnDelay:       2 * time.Second,
		CardDelay:       3 * time.Second,
		RollTimeout:     60 * time.Second,
		PurchaseTimeout: 30 * time.Second,
		AuctionTimeout:  15 * time.Second,
	}
}

// Definition describes a concrete game built on the engine. NewBoard is
// called once per game instance so instances never share owners.
type Definition struct {
	Key         string
	Name        string
	Description string
	StartSpace  string
	JailSpace   string
	NewBoard    func() (*board.Board, error)
	Cards       []CardEffect
	Rules       Rules
}

// Build creates a fresh board and checks that every space the definition
// refers to exists on it.
func (d *Definition) Build() (*board.Board, error) {
	if d == nil || d.NewBoard == nil {
		return nil, boarderr.Validation("definition needs a board constructor")
	}
	if d.Key == "" {
		return nil, boarderr.Validation("definition needs a key")
	}

	b, err := d.NewBoard()
	if err != nil {
		return nil, boarderr.Wrapf(err, "failed to build board for %s", d.Key)
	}

	if _, ok := b.Locate(d.StartSpace); !ok {
		return nil, boarderr.Validationf("%s: start space %q is not on the board", d.Key, d.StartSpace)
	}

	needsJail := false
	for _, space := range b.Spaces() {
		if space.Kind == board.KindGoToJail {
			needsJail = true
		}
	}
	for _, card := range d.Cards {
		switch c := card.(type) {
		case GoToJailCard:
			needsJail = true
		case AdvanceToCard:
			if _, ok := b.Locate(c.Space); !ok {
				return nil, boarderr.Validationf("%s: card target %q is not on the board", d.Key, c.Space)
			}
		case nil:
			return nil, boarderr.Validationf("%s: deck contains a nil card", d.Key)
		}
	}

	if needsJail || d.JailSpace != "" {
		loc, ok := b.Locate(d.JailSpace)
		if !ok {
			return nil, boarderr.Validationf("%s: jail space %q is not on the board", d.Key, d.JailSpace)
		}
		if b.Space(loc).Kind != board.KindJail {
			return nil, boarderr.Validationf("%s: jail space %q is a %s space", d.Key, d.JailSpace, b.Space(loc).Kind)
		}
	}

	if len(b.Properties()) == 0 {
		return nil, boarderr.Validationf("%s: board has no properties", d.Key)
	}

	return b, nil
}
