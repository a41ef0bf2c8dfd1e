package events

import (
	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
)

// EventType names a game lifecycle event
type EventType string

const (
	// EventTypeGameCreated fires when a channel opens a game
	EventTypeGameCreated EventType = "game.created"
	// EventTypeGameFinished fires when a started game ends; Result is set
	EventTypeGameFinished EventType = "game.finished"
)

// Event is something that happened to a hosted game
type Event struct {
	Type      EventType
	GameID    string
	ChannelID string
	Ruleset   string
	Result    *game.Result
	Cancelled bool
}

func (e *Event) GetType() EventType { return e.Type }
func (e *Event) IsCancelled() bool  { return e.Cancelled }

// Cancel stops the event reaching lower priority listeners
func (e *Event) Cancel() { e.Cancelled = true }
