package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/board-bot-discord/internal/dice"
	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	"github.com/KirkDiggler/board-bot-discord/internal/domain/rulesets"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
	"github.com/KirkDiggler/board-bot-discord/internal/events"
	"github.com/KirkDiggler/board-bot-discord/internal/repositories/results"
	"github.com/KirkDiggler/board-bot-discord/internal/uuid"
)

// Repository is an alias for the results repository interface
type Repository = results.Repository

// RoomFactory returns the room a channel's game talks to
type RoomFactory func(channelID string) engine.Room

// DefinitionLookup resolves a ruleset key to a fresh definition
type DefinitionLookup func(key string) (*engine.Definition, bool)

const saveTimeout = 5 * time.Second

// Service hosts at most one board game per channel
type Service interface {
	// CreateGame opens a game in a channel and seats its creator
	CreateGame(ctx context.Context, input *CreateGameInput) (*GameInfo, error)

	// JoinGame seats a player before the game starts
	JoinGame(ctx context.Context, channelID, playerID, name string) error

	// LeaveGame removes a player, eliminating them if the game is running
	LeaveGame(ctx context.Context, channelID, playerID string) error

	// StartGame begins play in a channel
	StartGame(ctx context.Context, channelID string) error

	// EndGame stops a channel's game without winners
	EndGame(ctx context.Context, channelID string) error

	// Command forwards a player command; false means it did not apply
	Command(ctx context.Context, channelID, playerID, name string, args ...string) (bool, error)

	// Observe reports a message the channel has shown
	Observe(channelID, text string)

	// PlayerSummary describes one player of a channel's game
	PlayerSummary(ctx context.Context, channelID, playerID string) (string, error)

	// RenderBoard draws a channel's board
	RenderBoard(ctx context.Context, channelID string, format engine.Format) (string, error)

	// Status returns a snapshot of a channel's game
	Status(ctx context.Context, channelID string) (*GameInfo, error)

	// Rulesets lists the games that can be created
	Rulesets() []*engine.Definition

	// Leaderboard lists the players with the most wins in a ruleset
	Leaderboard(ctx context.Context, ruleset string, limit int) ([]*results.Entry, error)

	// RecentResults lists the newest finished games of a ruleset
	RecentResults(ctx context.Context, ruleset string, limit int) ([]*engine.Result, error)

	// Close cancels every running game and waits for them to stop
	Close(ctx context.Context) error
}

// CreateGameInput contains data for creating a game
type CreateGameInput struct {
	ChannelID   string
	Ruleset     string
	CreatorID   string
	CreatorName string
}

// GameInfo is a snapshot of a hosted game
type GameInfo struct {
	ID        string
	ChannelID string
	Ruleset   string
	Name      string
	State     engine.State
	Standings []engine.Standing
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository                  // Required
	RoomFactory   RoomFactory                 // Required
	Definitions   DefinitionLookup            // Optional, defaults to the built-in rulesets
	AllRulesets   func() []*engine.Definition // Optional, listed by Rulesets
	Timing        engine.Timing               // Optional, zero uses engine.DefaultTiming
	Seed          int64                       // Optional, zero seeds each game from the clock
	Clock         clock.Clock                 // Optional
	UUIDGenerator uuid.Generator              // Optional, will use default if nil
	EventBus      *events.Bus                 // Optional, results are recorded through it
}

type table struct {
	channelID string
	engine    *engine.Engine
	cancel    context.CancelFunc
}

func (t *table) finished() bool {
	select {
	case <-t.engine.Done():
		return true
	default:
		return false
	}
}

type service struct {
	repository    Repository
	rooms         RoomFactory
	definitions   DefinitionLookup
	allRulesets   func() []*engine.Definition
	timing        engine.Timing
	seed          int64
	clock         clock.Clock
	uuidGenerator uuid.Generator
	bus           *events.Bus

	mu     sync.Mutex
	tables map[string]*table
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.RoomFactory == nil {
		panic("room factory is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	svc := &service{
		repository:  cfg.Repository,
		rooms:       cfg.RoomFactory,
		definitions: cfg.Definitions,
		allRulesets: cfg.AllRulesets,
		timing:      cfg.Timing,
		seed:        cfg.Seed,
		clock:       cfg.Clock,
		bus:         cfg.EventBus,
		tables:      make(map[string]*table),
		ctx:         ctx,
		cancel:      cancel,
	}

	if svc.definitions == nil {
		svc.definitions = rulesets.Get
		if svc.allRulesets == nil {
			svc.allRulesets = rulesets.All
		}
	}
	if svc.timing == (engine.Timing{}) {
		svc.timing = engine.DefaultTiming()
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}

	if svc.bus == nil {
		svc.bus = events.NewBus()
	}
	svc.bus.Subscribe(events.EventTypeGameFinished, &resultRecorder{repository: svc.repository})

	// Use provided UUID generator or create default
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateGame opens a game in a channel and seats its creator
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*GameInfo, error) {
	if input == nil {
		return nil, boarderr.InvalidArgument("input cannot be nil")
	}
	if input.ChannelID == "" {
		return nil, boarderr.InvalidArgument("channel ID is required")
	}
	if input.CreatorID == "" {
		return nil, boarderr.InvalidArgument("creator ID is required")
	}

	def, ok := s.definitions(input.Ruleset)
	if !ok {
		return nil, boarderr.NotFoundf("unknown ruleset %q", input.Ruleset)
	}

	s.mu.Lock()
	if existing, ok := s.tables[input.ChannelID]; ok && !existing.finished() {
		s.mu.Unlock()
		return nil, boarderr.AlreadyExists("a game is already running in this channel")
	}
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return nil, boarderr.FailedPrecondition("service is shutting down")
	}

	id := s.uuidGenerator.New()
	cfg := &engine.Config{
		ID:         id,
		Definition: def,
		Timing:     s.timing,
		Room:       s.rooms(input.ChannelID),
		Clock:      s.clock,
		Reporter:   &reporter{bus: s.bus, channelID: input.ChannelID},
	}
	if s.seed != 0 {
		src := dice.NewSource(s.seed)
		cfg.Roller = src
		cfg.Random = src
	}

	eng, err := engine.New(cfg)
	if err != nil {
		s.mu.Unlock()
		return nil, boarderr.Wrapf(err, "failed to create %s game", def.Key)
	}

	runCtx, cancel := context.WithCancel(s.ctx)
	t := &table{channelID: input.ChannelID, engine: eng, cancel: cancel}
	s.tables[input.ChannelID] = t
	s.mu.Unlock()

	go s.run(runCtx, t)

	log.Printf("Created %s game %s in channel %s", def.Key, id, input.ChannelID)
	if err := s.bus.Emit(ctx, &events.Event{
		Type:      events.EventTypeGameCreated,
		GameID:    id,
		ChannelID: input.ChannelID,
		Ruleset:   def.Key,
	}); err != nil {
		log.Printf("Failed to publish creation of game %s: %v", id, err)
	}

	name := input.CreatorName
	if name == "" {
		name = input.CreatorID
	}
	if err := eng.AddPlayer(ctx, input.CreatorID, name); err != nil {
		cancel()
		s.drop(t)
		return nil, err
	}

	return &GameInfo{
		ID:        id,
		ChannelID: input.ChannelID,
		Ruleset:   def.Key,
		Name:      def.Name,
		State:     engine.StateIdle,
	}, nil
}

func (s *service) run(ctx context.Context, t *table) {
	t.engine.Run(ctx)
	t.cancel()
	s.drop(t)
}

// drop forgets t unless the channel has already moved on to another game
func (s *service) drop(t *table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.tables[t.channelID]; ok && current == t {
		delete(s.tables, t.channelID)
	}
}

func (s *service) table(channelID string) (*table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[channelID]
	if !ok || t.finished() {
		return nil, boarderr.NotFound("no game in this channel")
	}
	return t, nil
}

// JoinGame seats a player before the game starts
func (s *service) JoinGame(ctx context.Context, channelID, playerID, name string) error {
	if playerID == "" {
		return boarderr.InvalidArgument("player ID is required")
	}
	t, err := s.table(channelID)
	if err != nil {
		return err
	}
	if name == "" {
		name = playerID
	}
	return gameErr(t.engine.AddPlayer(ctx, playerID, name))
}

// LeaveGame removes a player, eliminating them if the game is running
func (s *service) LeaveGame(ctx context.Context, channelID, playerID string) error {
	t, err := s.table(channelID)
	if err != nil {
		return err
	}
	return gameErr(t.engine.RemovePlayer(ctx, playerID))
}

// StartGame begins play in a channel
func (s *service) StartGame(ctx context.Context, channelID string) error {
	t, err := s.table(channelID)
	if err != nil {
		return err
	}
	return gameErr(t.engine.Start(ctx))
}

// EndGame stops a channel's game without winners
func (s *service) EndGame(ctx context.Context, channelID string) error {
	t, err := s.table(channelID)
	if err != nil {
		return err
	}
	return gameErr(t.engine.End(ctx))
}

// Command forwards a player command
func (s *service) Command(ctx context.Context, channelID, playerID, name string, args ...string) (bool, error) {
	t, err := s.table(channelID)
	if err != nil {
		return false, err
	}
	return t.engine.Command(ctx, playerID, name, args...), nil
}

// Observe reports a message the channel has shown. Channels without a game
// are ignored.
func (s *service) Observe(channelID, text string) {
	t, err := s.table(channelID)
	if err != nil {
		return
	}
	t.engine.Observe(text)
}

// PlayerSummary describes one player of a channel's game
func (s *service) PlayerSummary(ctx context.Context, channelID, playerID string) (string, error) {
	t, err := s.table(channelID)
	if err != nil {
		return "", err
	}
	summary, err := t.engine.PlayerSummary(ctx, playerID)
	return summary, gameErr(err)
}

// RenderBoard draws a channel's board
func (s *service) RenderBoard(ctx context.Context, channelID string, format engine.Format) (string, error) {
	t, err := s.table(channelID)
	if err != nil {
		return "", err
	}
	out, err := t.engine.RenderBoard(ctx, format)
	return out, gameErr(err)
}

// Status returns a snapshot of a channel's game
func (s *service) Status(ctx context.Context, channelID string) (*GameInfo, error) {
	t, err := s.table(channelID)
	if err != nil {
		return nil, err
	}

	standings, state, err := t.engine.Standings(ctx)
	if err != nil {
		return nil, gameErr(err)
	}

	def := t.engine.Definition()
	return &GameInfo{
		ID:        t.engine.ID(),
		ChannelID: channelID,
		Ruleset:   def.Key,
		Name:      def.Name,
		State:     state,
		Standings: standings,
	}, nil
}

// Rulesets lists the games that can be created
func (s *service) Rulesets() []*engine.Definition {
	if s.allRulesets == nil {
		return nil
	}
	return s.allRulesets()
}

// Leaderboard lists the players with the most wins in a ruleset
func (s *service) Leaderboard(ctx context.Context, ruleset string, limit int) ([]*results.Entry, error) {
	if ruleset == "" {
		return nil, boarderr.InvalidArgument("ruleset is required")
	}
	return s.repository.Top(ctx, ruleset, limit)
}

// RecentResults lists the newest finished games of a ruleset
func (s *service) RecentResults(ctx context.Context, ruleset string, limit int) ([]*engine.Result, error) {
	if ruleset == "" {
		return nil, boarderr.InvalidArgument("ruleset is required")
	}
	return s.repository.ListRecent(ctx, ruleset, limit)
}

// Close cancels every running game and waits for them to stop
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	s.cancel()
	running := make([]*table, 0, len(s.tables))
	for _, t := range s.tables {
		running = append(running, t)
	}
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range running {
		t := t
		g.Go(func() error {
			select {
			case <-t.engine.Done():
				return nil
			case <-gctx.Done():
				return boarderr.Wrapf(gctx.Err(), "game in channel %s did not stop", t.channelID)
			}
		})
	}
	return g.Wait()
}

// gameErr turns a call on a finished engine into a not found error
func gameErr(err error) error {
	if err != nil && errors.Is(err, engine.ErrGameOver) {
		return boarderr.NotFound("no game in this channel")
	}
	return err
}

// reporter publishes finished games. It runs on the engine loop, so no
// listener may call back into the service.
type reporter struct {
	bus       *events.Bus
	channelID string
}

func (r *reporter) GameFinished(result *engine.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := r.bus.Emit(ctx, &events.Event{
		Type:      events.EventTypeGameFinished,
		GameID:    result.GameID,
		ChannelID: r.channelID,
		Ruleset:   result.Ruleset,
		Result:    result,
	})
	if err != nil {
		log.Printf("Failed to record game %s in channel %s: %v", result.GameID, r.channelID, err)
		return
	}
	log.Printf("Recorded game %s in channel %s: winners %v", result.GameID, r.channelID, result.Winners)
}

// resultRecorder stores finished games for the leaderboard
type resultRecorder struct {
	repository Repository
}

func (r *resultRecorder) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Result == nil {
		return nil
	}
	return r.repository.Save(ctx, event.Result)
}

func (r *resultRecorder) Priority() int { return 0 }

func (r *resultRecorder) ID() string { return "results" }
