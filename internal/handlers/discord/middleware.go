package discord

import (
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RecoverMiddleware wraps a message handler so a panic is logged and
// reported to the channel instead of killing the session's event loop
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.MessageCreate)) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())

				if s != nil && m != nil && m.Message != nil {
					if _, err := s.ChannelMessageSend(m.ChannelID, "❌ An unexpected error occurred."); err != nil {
						log.Printf("Failed to report panic to channel %s: %v", m.ChannelID, err)
					}
				}
			}
		}()

		handler(s, m)
	}
}
