package game

import (
	"fmt"

	"github.com/KirkDiggler/board-bot-discord/internal/dice"
)

// jail locks p up on the jail space
func (e *Engine) jail(p *Player) {
	p.jailed = true
	p.jailTurn = 0
	p.Location = e.jailLoc
	p.departed = true
	if p == e.current {
		e.rerollSame = false
		e.doubles = 0
	}
}

func (e *Engine) sendToJail(p *Player, text string) {
	e.jail(p)
	e.finishWith(text)
}

func (e *Engine) release(p *Player) {
	p.jailed = false
	p.jailTurn = 0
}

func (e *Engine) beginJailTurn(p *Player) {
	p.jailTurn++
	if p.jailTurn > maxJailAttempts {
		e.forcedRelease(p)
		return
	}

	e.state = StateAwaitingRoll
	text := fmt.Sprintf("%s (%s) is in jail, attempt %d of %d. Use `roll` to try for doubles",
		p.Name, p.Label, p.jailTurn, maxJailAttempts)
	if p.canLeaveJail(e.rules.JailToll) {
		if p.EscapeTokens > 0 {
			text += ", or `escape` to use an escape token."
		} else {
			text += fmt.Sprintf(", or `escape` to pay %d and leave.", e.rules.JailToll)
		}
	} else {
		text += "."
	}
	e.await(text, stepRollTimeout, e.timing.RollTimeout)
}

// forcedRelease spends a token or the toll on the final jail turn, or
// eliminates a player who has neither.
func (e *Engine) forcedRelease(p *Player) {
	switch {
	case p.EscapeTokens > 0:
		p.EscapeTokens--
		e.release(p)
		e.promptRoll(p, fmt.Sprintf("%s used an escape token and is out of jail.", p.Name))
	case p.Currency >= e.rules.JailToll:
		e.debit(p, e.rules.JailToll)
		e.release(p)
		e.promptRoll(p, fmt.Sprintf("%s paid %d and is out of jail.", p.Name, e.rules.JailToll))
	default:
		e.eliminate(p, nil, fmt.Sprintf("%s can't get out of jail and is eliminated.", p.Name))
		e.finishTurn()
	}
}

// jailRoll resolves a roll made from jail. Doubles free the player and move
// them, without the extra roll doubles normally give.
func (e *Engine) jailRoll(p *Player, result *dice.RollResult) {
	if !result.IsDouble() {
		e.finishWith(fmt.Sprintf("%s rolled %s and stays in jail.", p.Name, result))
		return
	}

	e.release(p)
	e.rerollSame = false
	e.doubles = 0
	e.moveAndLand(p, result, fmt.Sprintf("%s rolled %s and breaks out of jail!", p.Name, result))
}

func (e *Engine) cmdEscape(p *Player) bool {
	if e.state != StateAwaitingRoll || p != e.current || !p.jailed {
		return false
	}

	var text string
	switch {
	case p.EscapeTokens > 0:
		p.EscapeTokens--
		text = fmt.Sprintf("%s used an escape token and is out of jail.", p.Name)
	case p.Currency >= e.rules.JailToll:
		e.debit(p, e.rules.JailToll)
		text = fmt.Sprintf("%s paid %d and is out of jail.", p.Name, e.rules.JailToll)
	default:
		return false
	}

	e.release(p)
	e.promptRoll(p, text)
	return true
}
