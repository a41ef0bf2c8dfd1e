package game

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
)

// credit adds currency and reports whether it won the game
func (e *Engine) credit(p *Player, amount int) bool {
	if amount <= 0 {
		return false
	}
	p.Currency += amount
	return e.checkCurrencyWin(p)
}

// debit takes up to amount from p and returns what was actually taken
func (e *Engine) debit(p *Player, amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.Currency {
		amount = p.Currency
	}
	p.Currency -= amount
	return amount
}

// pay moves up to amount from one player to another. A nil recipient is the bank.
func (e *Engine) pay(from, to *Player, amount int) int {
	paid := e.debit(from, amount)
	if to != nil {
		e.credit(to, paid)
	}
	return paid
}

// move walks p's token and pays the start bonus for every pass over the
// start space. The first departure from start does not count.
func (e *Engine) move(p *Player, steps int) string {
	if steps == 0 {
		return ""
	}

	moved := e.board.Move(p.Location, steps)
	p.Location = moved.Location

	skip := 0
	if !p.departed {
		skip = 1
		p.departed = true
	}

	if e.rules.PassStartBonus <= 0 {
		return ""
	}
	laps := moved.PassedCount(e.def.StartSpace, skip)
	if laps == 0 {
		return ""
	}

	bonus := laps * e.rules.PassStartBonus
	note := fmt.Sprintf("%s passed %s and collects %d.", p.Name, e.def.StartSpace, bonus)
	if e.credit(p, bonus) {
		return ""
	}
	return note
}

func (e *Engine) award(p *Player, space *board.Space) {
	space.SetOwner(p.ID)
	p.Properties = append(p.Properties, space)
}

func (e *Engine) checkCurrencyWin(p *Player) bool {
	if e.rules.MaxCurrency <= 0 || p.Currency < e.rules.MaxCurrency || e.over() {
		return false
	}
	e.endGame([]*Player{p}, fmt.Sprintf("%s reached %d", p.Name, e.rules.MaxCurrency))
	return true
}

// checkPropertyWin ends the game when p holds every property or enough
// complete color sets.
func (e *Engine) checkPropertyWin(p *Player) bool {
	if e.over() || p.Eliminated {
		return false
	}

	if e.rules.WinOnAllProperties {
		all := e.board.Properties()
		if len(all) > 0 && len(p.Properties) == len(all) {
			e.endGame([]*Player{p}, fmt.Sprintf("%s owns every property", p.Name))
			return true
		}
	}

	if e.rules.WinOnColorSets > 0 {
		sets := e.colorSets(p)
		if len(sets) >= e.rules.WinOnColorSets {
			e.endGame([]*Player{p}, fmt.Sprintf("%s completed %s", p.Name, strings.Join(sets, ", ")))
			return true
		}
	}
	return false
}

// colorSets returns the colors whose every property p owns
func (e *Engine) colorSets(p *Player) []string {
	var sets []string
	for _, color := range e.board.Colors() {
		complete := true
		for _, space := range e.board.ColorGroup(color) {
			if !p.Owns(space) {
				complete = false
				break
			}
		}
		if complete {
			sets = append(sets, color)
		}
	}
	return sets
}

func (e *Engine) checkLastStanding() bool {
	if e.state == StateIdle || e.over() {
		return false
	}
	alive := e.alive()
	if len(alive) > 1 {
		return false
	}
	if len(alive) == 1 {
		e.endGame(alive, fmt.Sprintf("%s is the last one standing", alive[0].Name))
	} else {
		e.endGame(nil, "nobody is left")
	}
	return true
}

// eliminate knocks p out. Properties go to by when given, otherwise they
// return to the bank.
func (e *Engine) eliminate(p *Player, by *Player, reason string) {
	if p.Eliminated {
		return
	}
	p.Eliminated = true
	p.jailed = false
	p.jailTurn = 0

	if by != nil && by.Eliminated {
		by = nil
	}
	for _, space := range p.Properties {
		if by != nil {
			e.award(by, space)
		} else {
			space.ClearOwner()
		}
	}
	transferred := len(p.Properties)
	p.Properties = nil

	if e.auction != nil && e.auction.HighestBidder == p {
		e.auction.HighestBid = 0
		e.auction.HighestBidder = nil
	}

	if by != nil && transferred > 0 {
		reason = fmt.Sprintf("%s %s takes %d properties.", reason, by.Name, transferred)
	}
	e.say(reason)
	e.log.Infof("Eliminated %s", p.Name)

	if by != nil && e.checkPropertyWin(by) {
		return
	}
	e.checkLastStanding()
}

func (e *Engine) timeLimitReached() {
	e.limit = nil
	if e.state == StateIdle || e.over() {
		return
	}
	e.endGame(e.leaders(), "time is up")
}

// leaders returns every remaining player tied for the best score
func (e *Engine) leaders() []*Player {
	var best []*Player
	top := -1
	for _, p := range e.alive() {
		score := p.Currency
		if e.rules.Scoring == ScoreProperties {
			score = len(p.Properties)
		}
		switch {
		case score > top:
			top = score
			best = []*Player{p}
		case score == top:
			best = append(best, p)
		}
	}
	return best
}

// endGame stops the game. Winners, when given, survive; everyone else is
// eliminated. The board is cleared for the next game.
func (e *Engine) endGame(winners []*Player, reason string) {
	if e.over() {
		return
	}
	started := e.state != StateIdle

	e.state = StateEnded
	e.cancelPending()
	if e.limit != nil {
		e.limit.Stop()
		e.limit = nil
	}
	e.auction = nil
	e.offer = nil

	if len(winners) > 0 {
		won := make(map[*Player]bool, len(winners))
		for _, w := range winners {
			won[w] = true
		}
		for _, p := range e.players {
			if !won[p] {
				p.Eliminated = true
			}
		}
	}

	result := e.result(winners, reason)

	if started {
		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = w.Name
		}
		switch len(winners) {
		case 0:
			e.say(fmt.Sprintf("Game over: %s.", reason))
		case 1:
			e.say(fmt.Sprintf("Game over: %s. %s wins!", reason, names[0]))
		default:
			e.say(fmt.Sprintf("Game over: %s. %s share the win!", reason, strings.Join(names, " and ")))
		}
	}

	e.board.ClearOwners()
	for _, p := range e.players {
		p.Properties = nil
		p.jailed = false
	}

	e.log.Infof("Game ended: %s", reason)
	if started && e.reporter != nil {
		e.reporter.GameFinished(result)
	}
}
