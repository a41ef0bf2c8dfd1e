package game

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/board-bot-discord/internal/dice"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

// ErrGameOver is returned by calls made after the game loop stopped
var ErrGameOver = boarderr.FailedPrecondition("game is over")

// Room is the chat room a game is played in. Every message the engine
// sends must come back through Engine.Observe once the room shows it.
type Room interface {
	Say(ctx context.Context, text string) error
}

// Randomizer drives shuffles, random amounts and elimination chances
type Randomizer interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Reporter is told about finished games
type Reporter interface {
	GameFinished(result *Result)
}

// State is where the scheduler is in the turn lifecycle
type State int

const (
	StateIdle State = iota
	StateAwaitingRoll
	StateResolvingLanding
	StateAwaitingPurchase
	StateAuction
	StateRoundComplete
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingRoll:
		return "awaiting-roll"
	case StateResolvingLanding:
		return "resolving-landing"
	case StateAwaitingPurchase:
		return "awaiting-purchase"
	case StateAuction:
		return "auction"
	case StateRoundComplete:
		return "round-complete"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Config holds the collaborators of one game instance
type Config struct {
	ID         string
	Definition *Definition
	Timing     Timing
	Room       Room
	Roller     dice.Roller
	Random     Randomizer
	Clock      clock.Clock
	Reporter   Reporter
}

// Engine runs one board game. All state is owned by the goroutine running
// Run; the exported methods hand work to it through the event channel.
type Engine struct {
	id       string
	def      *Definition
	rules    Rules
	timing   Timing
	board    *board.Board
	startLoc board.Location
	jailLoc  board.Location

	room     Room
	roller   dice.Roller
	random   Randomizer
	clock    clock.Clock
	reporter Reporter
	log      *log.Entry

	players []*Player
	byID    map[string]*Player
	order   []*Player
	queue   []*Player
	current *Player

	state      State
	round      int
	doubles    int
	rerollSame bool
	offer      *board.Space
	auction    *Auction
	deck       *Deck
	startedAt  time.Time

	timer    *pendingTimer
	awaiting *echoWait
	gen      uint64
	limit    *clock.Timer

	events chan event
	done   chan struct{}
}

// New creates a game instance with a fresh board
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, boarderr.InvalidArgument("config is required")
	}
	if cfg.Room == nil {
		return nil, boarderr.InvalidArgument("room is required")
	}

	b, err := cfg.Definition.Build()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		id:       cfg.ID,
		def:      cfg.Definition,
		rules:    cfg.Definition.Rules.withDefaults(),
		timing:   cfg.Timing,
		board:    b,
		room:     cfg.Room,
		roller:   cfg.Roller,
		random:   cfg.Random,
		clock:    cfg.Clock,
		reporter: cfg.Reporter,
		byID:     make(map[string]*Player),
		state:    StateIdle,
		events:   make(chan event, 256),
		done:     make(chan struct{}),
	}

	if e.roller == nil || e.random == nil {
		src := dice.NewRandomSource()
		if e.roller == nil {
			e.roller = src
		}
		if e.random == nil {
			e.random = src
		}
	}
	if e.clock == nil {
		e.clock = clock.New()
	}

	e.startLoc, _ = b.Locate(cfg.Definition.StartSpace)
	if cfg.Definition.JailSpace != "" {
		e.jailLoc, _ = b.Locate(cfg.Definition.JailSpace)
	}
	e.deck = NewDeck(cfg.Definition.Cards, e.random)
	e.log = log.WithFields(log.Fields{
		"game":    cfg.ID,
		"ruleset": cfg.Definition.Key,
	})

	return e, nil
}

// ID returns the game id
func (e *Engine) ID() string {
	return e.id
}

// Definition returns the ruleset this game plays
func (e *Engine) Definition() *Definition {
	return e.def
}

// Done is closed once the game loop has stopped
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Run is the dispatch loop. It returns when the game ends or ctx is
// cancelled; cancellation tears the game down without winners.
func (e *Engine) Run(ctx context.Context) {
	defer close(e.done)

	for {
		select {
		case <-ctx.Done():
			e.endGame(nil, "the game was cancelled")
			return
		case ev := <-e.events:
			e.handle(ev)
			if e.over() {
				return
			}
		}
	}
}

// AddPlayer seats a player before the game starts
func (e *Engine) AddPlayer(ctx context.Context, playerID, name string) error {
	var err error
	if callErr := e.call(ctx, func() { err = e.addPlayer(playerID, name) }); callErr != nil {
		return callErr
	}
	return err
}

// Start shuffles the turn order and begins the first round
func (e *Engine) Start(ctx context.Context) error {
	var err error
	if callErr := e.call(ctx, func() { err = e.start() }); callErr != nil {
		return callErr
	}
	return err
}

// RemovePlayer takes a player out of the game, releasing their properties
func (e *Engine) RemovePlayer(ctx context.Context, playerID string) error {
	var err error
	if callErr := e.call(ctx, func() { err = e.removePlayer(playerID) }); callErr != nil {
		return callErr
	}
	return err
}

// EliminatePlayer knocks a player out on behalf of the host
func (e *Engine) EliminatePlayer(ctx context.Context, playerID string) error {
	var err error
	if callErr := e.call(ctx, func() { err = e.eliminatePlayer(playerID) }); callErr != nil {
		return callErr
	}
	return err
}

// End stops the game without declaring winners
func (e *Engine) End(ctx context.Context) error {
	return e.call(ctx, func() { e.endGame(nil, "the game was ended") })
}

// Command applies a player command. It returns false when the command does
// not fit the current turn, state or player.
func (e *Engine) Command(ctx context.Context, playerID, name string, args ...string) bool {
	ok := false
	if err := e.call(ctx, func() { ok = e.handleCommand(playerID, name, args) }); err != nil {
		return false
	}
	return ok
}

// Observe reports a message the room has shown
func (e *Engine) Observe(text string) {
	e.post(echoEvent{text: text})
}

// PlayerSummary describes one player's position, money and holdings
func (e *Engine) PlayerSummary(ctx context.Context, playerID string) (string, error) {
	var summary string
	var err error
	if callErr := e.call(ctx, func() {
		p, ok := e.byID[playerID]
		if !ok {
			err = boarderr.NotFoundf("player %s is not in this game", playerID)
			return
		}
		summary = e.playerSummary(p)
	}); callErr != nil {
		return "", callErr
	}
	return summary, err
}

// RenderBoard draws the board grid
func (e *Engine) RenderBoard(ctx context.Context, format Format) (string, error) {
	var out string
	if err := e.call(ctx, func() { out = e.renderBoard(format) }); err != nil {
		return "", err
	}
	return out, nil
}

// Standings returns a snapshot of every player
func (e *Engine) Standings(ctx context.Context) ([]Standing, State, error) {
	var standings []Standing
	var state State
	if err := e.call(ctx, func() {
		standings = e.standings(nil)
		state = e.state
	}); err != nil {
		return nil, StateEnded, err
	}
	return standings, state, nil
}

func (e *Engine) over() bool {
	return e.state == StateEnded
}

func (e *Engine) alive() []*Player {
	var out []*Player
	for _, p := range e.players {
		if !p.Eliminated {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) addPlayer(playerID, name string) error {
	if e.state != StateIdle {
		return boarderr.FailedPrecondition("players cannot join after the game started")
	}
	if playerID == "" {
		return boarderr.InvalidArgument("player id is required")
	}
	if _, exists := e.byID[playerID]; exists {
		return boarderr.AlreadyExistsf("%s already joined", name)
	}
	if len(e.players) >= e.rules.MaxPlayers {
		return boarderr.FailedPreconditionf("the game is full (%d players)", e.rules.MaxPlayers)
	}
	if name == "" {
		name = playerID
	}

	p := &Player{
		ID:       playerID,
		Name:     name,
		Label:    label(len(e.players)),
		Location: e.startLoc,
		Currency: e.rules.StartingCurrency,
	}
	e.players = append(e.players, p)
	e.byID[playerID] = p

	e.log.Debugf("Player %s joined as %s", name, p.Label)
	return nil
}

func (e *Engine) removePlayer(playerID string) error {
	p, ok := e.byID[playerID]
	if !ok {
		return boarderr.NotFoundf("player %s is not in this game", playerID)
	}

	if e.state == StateIdle {
		delete(e.byID, playerID)
		for i, existing := range e.players {
			if existing == p {
				e.players = append(e.players[:i], e.players[i+1:]...)
				break
			}
		}
		for i, remaining := range e.players {
			remaining.Label = label(i)
		}
		return nil
	}
	if e.over() {
		return boarderr.FailedPrecondition("the game is over")
	}

	p.Left = true
	if !p.Eliminated {
		e.eliminate(p, nil, fmt.Sprintf("%s left the game.", p.Name))
		e.interruptTurn(p)
	}
	return nil
}

func (e *Engine) eliminatePlayer(playerID string) error {
	p, ok := e.byID[playerID]
	if !ok {
		return boarderr.NotFoundf("player %s is not in this game", playerID)
	}
	if e.state == StateIdle || e.over() {
		return boarderr.FailedPreconditionf("cannot eliminate while the game is %s", e.state)
	}
	if p.Eliminated {
		return boarderr.FailedPreconditionf("%s is already eliminated", p.Name)
	}

	e.eliminate(p, nil, fmt.Sprintf("%s was eliminated.", p.Name))
	e.interruptTurn(p)
	return nil
}

// interruptTurn moves play on when the player who was being waited on is gone
func (e *Engine) interruptTurn(p *Player) {
	if e.over() || p != e.current {
		return
	}
	switch e.state {
	case StateAwaitingRoll, StateAwaitingPurchase:
		e.offer = nil
		e.rerollSame = false
		e.finishTurn()
	}
}
