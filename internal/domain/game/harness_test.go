package game

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/board-bot-discord/internal/dice/mock"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
)

// fakeRoom records messages and echoes them back the way a chat transport would
type fakeRoom struct {
	mu       sync.Mutex
	messages []string
	engine   *Engine
	noEcho   bool
	err      error
}

func (r *fakeRoom) Say(_ context.Context, text string) error {
	r.mu.Lock()
	r.messages = append(r.messages, text)
	e, noEcho, err := r.engine, r.noEcho, r.err
	r.mu.Unlock()

	if err != nil {
		return err
	}
	if !noEcho && e != nil {
		e.Observe(text)
	}
	return nil
}

func (r *fakeRoom) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *fakeRoom) last() string {
	msgs := r.all()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func (r *fakeRoom) contains(substr string) bool {
	for _, msg := range r.all() {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

type fakeReporter struct {
	mu      sync.Mutex
	results []*Result
}

func (r *fakeReporter) GameFinished(result *Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *fakeReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

// reverseRandom reverses on every shuffle so order tests can tell join
// order from turn order
type reverseRandom struct {
	mockdice.ScriptedRandom
}

func (r *reverseRandom) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// testBoard is a 3x3 ring:
//
//	0 Start  1 LotA   2 Card   3 Jail  4 LotB  5 Fee
//	6 Rest   7 LotC   8 Trap   9 Hazard 10 LotD 11 Spot
func testBoard() (*board.Board, error) {
	return board.New(
		[]*board.Space{
			board.Plain("Start", "white"),
			board.RentProperty("LotA", "red", 100, board.Fixed(10)),
			board.Action("Card", "yellow"),
		},
		[]*board.Space{
			board.Jail("Jail", "orange"),
			board.RentProperty("LotB", "red", 120, board.Fixed(15)),
			board.Rent("Fee", "gray", board.Fixed(50)),
		},
		[]*board.Space{
			board.Plain("Rest", "white"),
			board.RentProperty("LotC", "blue", 200, board.Fixed(30)),
			board.GoToJail("Trap", "black"),
		},
		[]*board.Space{
			board.Elimination("Hazard", "purple", board.Fixed(50)),
			board.EliminationProperty("LotD", "green", 150, board.Fixed(20)),
			board.Plain("Spot", "white"),
		},
	)
}

func testDefinition() *Definition {
	return &Definition{
		Key:        "test",
		Name:       "Test Board",
		StartSpace: "Start",
		JailSpace:  "Jail",
		NewBoard:   testBoard,
		Cards:      []CardEffect{CollectCard{Amount: 25}},
		Rules: Rules{
			StartingCurrency: 500,
			PassStartBonus:   100,
			JailToll:         50,
			BidIncrement:     5,
			DieCount:         1,
			DieSides:         6,
			MaxDoubles:       3,
		},
	}
}

func twoDice(def *Definition) *Definition {
	def.Rules.DieCount = 2
	return def
}

func testTiming() Timing {
	return Timing{
		TurnDelay:       time.Second,
		CardDelay:       2 * time.Second,
		RollTimeout:     30 * time.Second,
		PurchaseTimeout: 20 * time.Second,
		AuctionTimeout:  10 * time.Second,
	}
}

type harness struct {
	t        *testing.T
	e        *Engine
	room     *fakeRoom
	clock    *clock.Mock
	roller   *mockdice.ManualMockRoller
	random   *mockdice.ScriptedRandom
	reporter *fakeReporter
}

func newHarness(t *testing.T, def *Definition, configure ...func(*Config)) *harness {
	t.Helper()

	h := &harness{
		t:        t,
		room:     &fakeRoom{},
		clock:    clock.NewMock(),
		roller:   mockdice.NewManualMockRoller(),
		random:   &mockdice.ScriptedRandom{Fallback: 99},
		reporter: &fakeReporter{},
	}

	cfg := &Config{
		ID:         "game-1",
		Definition: def,
		Timing:     testTiming(),
		Room:       h.room,
		Roller:     h.roller,
		Random:     h.random,
		Clock:      h.clock,
		Reporter:   h.reporter,
	}
	for _, fn := range configure {
		fn(cfg)
	}

	e, err := New(cfg)
	require.NoError(t, err)
	h.e = e
	h.room.engine = e
	return h
}

func (h *harness) join(names ...string) {
	h.t.Helper()
	for _, name := range names {
		require.NoError(h.t, h.e.addPlayer(strings.ToLower(name), name))
	}
}

func (h *harness) player(name string) *Player {
	h.t.Helper()
	p, ok := h.e.byID[strings.ToLower(name)]
	require.True(h.t, ok, "unknown player %s", name)
	return p
}

func (h *harness) space(name string) *board.Space {
	h.t.Helper()
	loc, ok := h.e.board.Locate(name)
	require.True(h.t, ok, "unknown space %s", name)
	return h.e.board.Space(loc)
}

// placeAt puts a player's token on a space as if they had been moving already
func (h *harness) placeAt(name, spaceName string) {
	h.t.Helper()
	loc, ok := h.e.board.Locate(spaceName)
	require.True(h.t, ok, "unknown space %s", spaceName)
	p := h.player(name)
	p.Location = loc
	p.departed = true
}

func (h *harness) own(name string, spaces ...string) {
	h.t.Helper()
	for _, s := range spaces {
		h.e.award(h.player(name), h.space(s))
	}
}

// start begins the game and plays up to the first roll prompt
func (h *harness) start() {
	h.t.Helper()
	require.NoError(h.t, h.e.start())
	h.drain()
	h.settle()
}

// drain handles every event already queued
func (h *harness) drain() {
	for {
		select {
		case ev := <-h.e.events:
			h.e.handle(ev)
		default:
			return
		}
	}
}

// fire advances the clock to the pending timer and handles its event
func (h *harness) fire() {
	h.t.Helper()
	require.NotNil(h.t, h.e.timer, "nothing is scheduled (state %s)", h.e.state)

	h.clock.Add(h.e.timer.delay)
	h.waitEvent()
	h.drain()
}

func (h *harness) waitEvent() {
	h.t.Helper()
	select {
	case ev := <-h.e.events:
		h.e.handle(ev)
	case <-time.After(time.Second):
		h.t.Fatal("timed out waiting for a game event")
	}
}

// settle runs automatic steps until the game waits on a player or ends
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 100; i++ {
		if h.e.over() || h.e.timer == nil || h.e.timer.kind != timerStep {
			return
		}
		h.fire()
	}
	h.t.Fatal("game never settled")
}

func (h *harness) cmd(name, command string, args ...string) bool {
	h.t.Helper()
	ok := h.e.handleCommand(strings.ToLower(name), command, args)
	h.drain()
	return ok
}

// roll queues die faces, rolls them for the named player and settles
func (h *harness) roll(name string, faces ...int) {
	h.t.Helper()
	h.roller.QueueRolls(faces...)
	require.True(h.t, h.cmd(name, "roll"), "%s could not roll in state %s", name, h.e.state)
	h.settle()
}

// expire lets the pending deadline run out
func (h *harness) expire() {
	h.t.Helper()
	require.NotNil(h.t, h.e.timer, "nothing is scheduled (state %s)", h.e.state)
	require.Equal(h.t, timerDeadline, h.e.timer.kind)
	h.fire()
	h.settle()
}

func (h *harness) requireTurn(name string, state State) {
	h.t.Helper()
	require.Equal(h.t, state, h.e.state)
	require.NotNil(h.t, h.e.current)
	require.Equal(h.t, h.player(name), h.e.current)
}
