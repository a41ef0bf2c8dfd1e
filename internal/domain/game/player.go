package game

import (
	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
)

// Player is one seat's board state
type Player struct {
	ID    string
	Name  string
	Label string

	Location     board.Location
	Currency     int
	Properties   []*board.Space
	EscapeTokens int
	Eliminated   bool
	Left         bool

	jailed   bool
	jailTurn int
	// departed is false until the token first leaves the start space
	departed bool
}

// InJail reports whether the player is jailed
func (p *Player) InJail() bool {
	return p.jailed
}

// JailTurn returns how many jailed turns have begun, and false when free
func (p *Player) JailTurn() (int, bool) {
	if !p.jailed {
		return 0, false
	}
	return p.jailTurn, true
}

// Owns reports whether the player holds a space
func (p *Player) Owns(space *board.Space) bool {
	return space != nil && space.Owner() == p.ID
}

func (p *Player) canLeaveJail(toll int) bool {
	return p.EscapeTokens > 0 || p.Currency >= toll
}

// label returns A, B, C... for join order
func label(i int) string {
	return string(rune('A' + i))
}
