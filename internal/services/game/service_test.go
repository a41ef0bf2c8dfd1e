package game_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/rulesets"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
	"github.com/KirkDiggler/board-bot-discord/internal/events"
	"github.com/KirkDiggler/board-bot-discord/internal/repositories/results"
	mockresults "github.com/KirkDiggler/board-bot-discord/internal/repositories/results/mock"
	gamesvc "github.com/KirkDiggler/board-bot-discord/internal/services/game"
	mockuuid "github.com/KirkDiggler/board-bot-discord/internal/uuid/mocks"
)

type recordingRoom struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingRoom) Say(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, text)
	return nil
}

func (r *recordingRoom) said(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

type fixture struct {
	svc   gamesvc.Service
	repo  *mockresults.MockRepository
	ids   *mockuuid.MockGenerator
	rooms map[string]*recordingRoom
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  mockresults.NewMockRepository(ctrl),
		ids:   mockuuid.NewMockGenerator(ctrl),
		rooms: make(map[string]*recordingRoom),
	}
	var mu sync.Mutex
	f.svc = gamesvc.NewService(&gamesvc.ServiceConfig{
		Repository: f.repo,
		RoomFactory: func(channelID string) engine.Room {
			mu.Lock()
			defer mu.Unlock()
			room := &recordingRoom{}
			f.rooms[channelID] = room
			return room
		},
		Seed:          7,
		Clock:         clock.NewMock(),
		UUIDGenerator: f.ids,
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = f.svc.Close(ctx)
	})
	return f
}

func (f *fixture) create(t *testing.T, channelID, gameID string) *gamesvc.GameInfo {
	t.Helper()
	f.ids.EXPECT().New().Return(gameID)
	info, err := f.svc.CreateGame(context.Background(), &gamesvc.CreateGameInput{
		ChannelID:   channelID,
		Ruleset:     rulesets.TradeKey,
		CreatorID:   "alice",
		CreatorName: "Alice",
	})
	require.NoError(t, err)
	return info
}

func (f *fixture) waitGone(t *testing.T, channelID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, err := f.svc.Status(context.Background(), channelID)
		return boarderr.IsNotFound(err)
	}, time.Second, 10*time.Millisecond)
}

func TestNewService_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() {
		gamesvc.NewService(&gamesvc.ServiceConfig{})
	})
	assert.Panics(t, func() {
		gamesvc.NewService(&gamesvc.ServiceConfig{Repository: results.NewInMemoryRepository()})
	})
}

func TestCreateGame_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateGame(ctx, nil)
	assert.True(t, boarderr.IsInvalidArgument(err))

	_, err = f.svc.CreateGame(ctx, &gamesvc.CreateGameInput{Ruleset: rulesets.TradeKey, CreatorID: "alice"})
	assert.True(t, boarderr.IsInvalidArgument(err))

	_, err = f.svc.CreateGame(ctx, &gamesvc.CreateGameInput{ChannelID: "chan-1", Ruleset: "chess", CreatorID: "alice"})
	assert.True(t, boarderr.IsNotFound(err))
}

func TestCreateGame_SeatsCreator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	info := f.create(t, "chan-1", "game-1")
	assert.Equal(t, "game-1", info.ID)
	assert.Equal(t, rulesets.TradeKey, info.Ruleset)
	assert.Equal(t, "Trade Town", info.Name)
	assert.Equal(t, engine.StateIdle, info.State)

	status, err := f.svc.Status(ctx, "chan-1")
	require.NoError(t, err)
	require.Len(t, status.Standings, 1)
	assert.Equal(t, "alice", status.Standings[0].PlayerID)
	assert.Equal(t, "A", status.Standings[0].Label)

	_, err = f.svc.CreateGame(ctx, &gamesvc.CreateGameInput{
		ChannelID: "chan-1",
		Ruleset:   rulesets.SurvivalKey,
		CreatorID: "bob",
	})
	assert.True(t, boarderr.IsAlreadyExists(err))
}

func TestCreateGame_FailedSeatingFreesTheChannel(t *testing.T) {
	f := newFixture(t)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	f.ids.EXPECT().New().Return("game-1")
	_, err := f.svc.CreateGame(cancelled, &gamesvc.CreateGameInput{
		ChannelID:   "chan-1",
		Ruleset:     rulesets.TradeKey,
		CreatorID:   "alice",
		CreatorName: "Alice",
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = f.svc.Status(context.Background(), "chan-1")
	assert.True(t, boarderr.IsNotFound(err), "the half-made game is gone at once")

	info := f.create(t, "chan-1", "game-2")
	assert.Equal(t, "game-2", info.ID)
}

func TestJoinAndLeave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "chan-1", "game-1")

	require.NoError(t, f.svc.JoinGame(ctx, "chan-1", "bob", "Bob"))
	err := f.svc.JoinGame(ctx, "chan-1", "bob", "Bob")
	assert.True(t, boarderr.IsAlreadyExists(err))

	err = f.svc.JoinGame(ctx, "chan-2", "cara", "Cara")
	assert.True(t, boarderr.IsNotFound(err))

	require.NoError(t, f.svc.LeaveGame(ctx, "chan-1", "alice"))
	status, err := f.svc.Status(ctx, "chan-1")
	require.NoError(t, err)
	require.Len(t, status.Standings, 1)
	assert.Equal(t, "bob", status.Standings[0].PlayerID)
	assert.Equal(t, "A", status.Standings[0].Label)
}

func TestStartGame_AnnouncesTurnOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "chan-1", "game-1")
	// closing the fixture cancels the started game, which records it
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := f.svc.StartGame(ctx, "chan-1")
	assert.True(t, boarderr.IsFailedPrecondition(err), "one player is not enough")

	require.NoError(t, f.svc.JoinGame(ctx, "chan-1", "bob", "Bob"))
	require.NoError(t, f.svc.StartGame(ctx, "chan-1"))

	assert.True(t, f.rooms["chan-1"].said("Trade Town begins!"))
	status, err := f.svc.Status(ctx, "chan-1")
	require.NoError(t, err)
	assert.Equal(t, engine.StateRoundComplete, status.State)

	err = f.svc.JoinGame(ctx, "chan-1", "cara", "Cara")
	assert.True(t, boarderr.IsFailedPrecondition(err))

	ok, err := f.svc.Command(ctx, "chan-1", "alice", "buy")
	require.NoError(t, err)
	assert.False(t, ok, "nothing to buy between turns")
}

func TestEndGame_RecordsStartedGame(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "chan-1", "game-1")
	require.NoError(t, f.svc.JoinGame(ctx, "chan-1", "bob", "Bob"))
	require.NoError(t, f.svc.StartGame(ctx, "chan-1"))

	saved := make(chan *engine.Result, 1)
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, result *engine.Result) error {
			saved <- result
			return nil
		})

	require.NoError(t, f.svc.EndGame(ctx, "chan-1"))

	select {
	case result := <-saved:
		assert.Equal(t, "game-1", result.GameID)
		assert.Equal(t, rulesets.TradeKey, result.Ruleset)
		assert.Empty(t, result.Winners)
		assert.Len(t, result.Standings, 2)
	case <-time.After(time.Second):
		t.Fatal("result was not saved")
	}

	f.waitGone(t, "chan-1")
	assert.True(t, f.rooms["chan-1"].said("Game over"))

	// the channel is free again
	f.create(t, "chan-1", "game-2")
}

func TestEndGame_BeforeStartIsNotRecorded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "chan-1", "game-1")

	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.svc.EndGame(ctx, "chan-1"))
	f.waitGone(t, "chan-1")

	err := f.svc.EndGame(ctx, "chan-1")
	assert.True(t, boarderr.IsNotFound(err))
}

func TestCommand_NoGame(t *testing.T) {
	f := newFixture(t)

	ok, err := f.svc.Command(context.Background(), "chan-9", "alice", "roll")
	assert.False(t, ok)
	assert.True(t, boarderr.IsNotFound(err))

	assert.NotPanics(t, func() {
		f.svc.Observe("chan-9", "hello")
	})
}

func TestPlayerSummaryAndBoard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "chan-1", "game-1")

	summary, err := f.svc.PlayerSummary(ctx, "chan-1", "alice")
	require.NoError(t, err)
	assert.Contains(t, summary, "Alice (A) is on Go with 1500.")

	_, err = f.svc.PlayerSummary(ctx, "chan-1", "zed")
	assert.True(t, boarderr.IsNotFound(err))

	text, err := f.svc.RenderBoard(ctx, "chan-1", engine.FormatText)
	require.NoError(t, err)
	assert.Contains(t, text, "A")

	html, err := f.svc.RenderBoard(ctx, "chan-1", engine.FormatHTML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, `<table class="board">`))
}

func TestLeaderboardAndRecent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	top := []*results.Entry{{PlayerID: "alice", Name: "Alice", Wins: 4}}
	f.repo.EXPECT().Top(gomock.Any(), rulesets.TradeKey, 5).Return(top, nil)

	entries, err := f.svc.Leaderboard(ctx, rulesets.TradeKey, 5)
	require.NoError(t, err)
	assert.Equal(t, top, entries)

	recent := []*engine.Result{{GameID: "game-1", Ruleset: rulesets.TradeKey}}
	f.repo.EXPECT().ListRecent(gomock.Any(), rulesets.TradeKey, 3).Return(recent, nil)

	got, err := f.svc.RecentResults(ctx, rulesets.TradeKey, 3)
	require.NoError(t, err)
	assert.Equal(t, recent, got)

	_, err = f.svc.Leaderboard(ctx, "", 5)
	assert.True(t, boarderr.IsInvalidArgument(err))
}

func TestRulesets(t *testing.T) {
	f := newFixture(t)

	defs := f.svc.Rulesets()
	require.Len(t, defs, 2)
	assert.Equal(t, rulesets.SurvivalKey, defs[0].Key)
	assert.Equal(t, rulesets.TradeKey, defs[1].Key)
}

func TestClose_StopsGames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, "chan-1", "game-1")
	f.create(t, "chan-2", "game-2")

	closeCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, f.svc.Close(closeCtx))

	f.waitGone(t, "chan-1")
	f.waitGone(t, "chan-2")

	_, err := f.svc.CreateGame(ctx, &gamesvc.CreateGameInput{
		ChannelID: "chan-3",
		Ruleset:   rulesets.TradeKey,
		CreatorID: "alice",
	})
	assert.True(t, boarderr.IsFailedPrecondition(err))
}

type eventLog struct {
	mu     sync.Mutex
	events []*events.Event
}

func (l *eventLog) HandleEvent(_ context.Context, e *events.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
	return nil
}

func (l *eventLog) Priority() int { return 100 }
func (l *eventLog) ID() string    { return "log" }

func TestLifecycleEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockresults.NewMockRepository(ctrl)
	ids := mockuuid.NewMockGenerator(ctrl)
	bus := events.NewBus()
	seen := &eventLog{}
	bus.Subscribe(events.EventTypeGameCreated, seen)
	bus.Subscribe(events.EventTypeGameFinished, seen)

	svc := gamesvc.NewService(&gamesvc.ServiceConfig{
		Repository:    repo,
		RoomFactory:   func(string) engine.Room { return &recordingRoom{} },
		Clock:         clock.NewMock(),
		UUIDGenerator: ids,
		EventBus:      bus,
	})
	ctx := context.Background()

	ids.EXPECT().New().Return("game-1")
	_, err := svc.CreateGame(ctx, &gamesvc.CreateGameInput{ChannelID: "chan-1", Ruleset: rulesets.SurvivalKey, CreatorID: "alice"})
	require.NoError(t, err)
	require.NoError(t, svc.JoinGame(ctx, "chan-1", "bob", "Bob"))
	require.NoError(t, svc.StartGame(ctx, "chan-1"))

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Close(ctx))

	seen.mu.Lock()
	defer seen.mu.Unlock()
	require.Len(t, seen.events, 2)
	assert.Equal(t, events.EventTypeGameCreated, seen.events[0].Type)
	assert.Equal(t, rulesets.SurvivalKey, seen.events[0].Ruleset)
	assert.Equal(t, events.EventTypeGameFinished, seen.events[1].Type)
	assert.Equal(t, "chan-1", seen.events[1].ChannelID)
	require.NotNil(t, seen.events[1].Result)
	assert.Equal(t, "game-1", seen.events[1].Result.GameID)
}
