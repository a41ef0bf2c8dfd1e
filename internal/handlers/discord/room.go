package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	engine "github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	gamesvc "github.com/KirkDiggler/board-bot-discord/internal/services/game"
)

// MessageSender is the part of a discordgo session that posts to a channel
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Room posts a game's messages to one channel. The game waits for each
// message to come back through HandleMessageCreate before moving on.
type Room struct {
	sender    MessageSender
	channelID string
}

// NewRoom creates a room bound to a channel
func NewRoom(sender MessageSender, channelID string) *Room {
	return &Room{sender: sender, channelID: channelID}
}

// Say implements game.Room
func (r *Room) Say(ctx context.Context, text string) error {
	_, err := r.sender.ChannelMessageSend(r.channelID, text, discordgo.WithContext(ctx))
	return err
}

// NewRoomFactory gives every channel a room that posts through sender
func NewRoomFactory(sender MessageSender) gamesvc.RoomFactory {
	return func(channelID string) engine.Room {
		return NewRoom(sender, channelID)
	}
}
