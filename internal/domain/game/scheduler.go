package game

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/board-bot-discord/internal/dice"
	boarderr "github.com/KirkDiggler/board-bot-discord/internal/errors"
)

func (e *Engine) start() error {
	if e.state != StateIdle {
		return boarderr.FailedPrecondition("the game has already started")
	}
	if len(e.players) < e.rules.MinPlayers {
		return boarderr.FailedPreconditionf("need at least %d players to start, have %d", e.rules.MinPlayers, len(e.players))
	}

	e.order = make([]*Player, len(e.players))
	copy(e.order, e.players)
	e.random.Shuffle(len(e.order), func(i, j int) {
		e.order[i], e.order[j] = e.order[j], e.order[i]
	})

	e.startedAt = e.clock.Now()
	if e.timing.TimeLimit > 0 {
		e.limit = e.clock.AfterFunc(e.timing.TimeLimit, func() {
			e.post(limitEvent{})
		})
	}

	names := make([]string, len(e.order))
	for i, p := range e.order {
		names[i] = fmt.Sprintf("%s (%s)", p.Name, p.Label)
	}

	e.log.Infof("Starting game with %d players", len(e.order))
	e.state = StateRoundComplete
	e.then(fmt.Sprintf("%s begins! Turn order: %s.", e.def.Name, strings.Join(names, ", ")), stepAdvance, e.timing.TurnDelay)
	return nil
}

// advance hands the turn to the next player, refilling the lap queue when
// it runs dry.
func (e *Engine) advance() {
	if e.over() || e.checkLastStanding() {
		return
	}

	if e.rerollSame && e.current != nil && !e.current.Eliminated && !e.current.jailed {
		e.rerollSame = false
		e.promptRoll(e.current, fmt.Sprintf("%s rolled doubles and goes again.", e.current.Name))
		return
	}
	e.rerollSame = false

	for len(e.queue) > 0 {
		p := e.queue[0]
		e.queue = e.queue[1:]
		if p.Eliminated {
			continue
		}
		e.current = p
		e.doubles = 0
		e.beginTurn(p)
		return
	}

	e.refillQueue()
}

func (e *Engine) refillQueue() {
	e.queue = e.queue[:0]
	for _, p := range e.order {
		if !p.Eliminated {
			e.queue = append(e.queue, p)
		}
	}
	if len(e.queue) == 0 {
		e.endGame(nil, "nobody is left")
		return
	}

	e.round++
	e.current = nil
	e.state = StateRoundComplete
	e.then(e.roundSummary(), stepAdvance, e.timing.TurnDelay)
}

func (e *Engine) beginTurn(p *Player) {
	if p.jailed {
		e.beginJailTurn(p)
		return
	}
	e.promptRoll(p, "")
}

func (e *Engine) promptRoll(p *Player, lead string) {
	e.state = StateAwaitingRoll
	text := fmt.Sprintf("%s (%s), it's your turn. Use `roll` to roll the dice.", p.Name, p.Label)
	if lead != "" {
		text = lead + " " + text
	}
	e.await(text, stepRollTimeout, e.timing.RollTimeout)
}

func (e *Engine) cmdRoll(p *Player) bool {
	if e.state != StateAwaitingRoll || p != e.current {
		return false
	}
	e.cancelPending()
	e.rollFor(p)
	return true
}

func (e *Engine) rollTimedOut() {
	if e.state != StateAwaitingRoll || e.current == nil {
		return
	}
	e.say(fmt.Sprintf("%s took too long, rolling for them.", e.current.Name))
	e.rollFor(e.current)
}

func (e *Engine) rollFor(p *Player) {
	result, err := e.roller.Roll(e.rules.DieCount, e.rules.DieSides, 0)
	if err != nil {
		e.log.WithError(err).Errorf("Failed to roll for %s", p.Name)
		e.finishWith(fmt.Sprintf("The dice got lost, %s loses the turn.", p.Name))
		return
	}

	if p.jailed {
		e.jailRoll(p, result)
		return
	}

	double := result.IsDouble()
	if double {
		e.doubles++
	} else {
		e.doubles = 0
	}

	if double && e.rules.MaxDoubles > 0 && e.doubles >= e.rules.MaxDoubles {
		e.doubles = 0
		e.sendToJail(p, fmt.Sprintf("%s rolled %s, %d doubles in a row, and goes to jail.", p.Name, result, e.rules.MaxDoubles))
		return
	}

	e.rerollSame = double
	e.moveAndLand(p, result, fmt.Sprintf("%s rolled %s.", p.Name, result))
}

func (e *Engine) moveAndLand(p *Player, result *dice.RollResult, lead string) {
	note := e.move(p, result.Total)
	if e.over() {
		return
	}

	space := e.board.Space(p.Location)
	text := fmt.Sprintf("%s %s moves to %s.", lead, p.Label, space.Name)
	if note != "" {
		text += " " + note
	}

	e.state = StateResolvingLanding
	e.then(text, stepResolveLanding, e.timing.TurnDelay)
}

// finishTurn continues with the next turn after the turn delay
func (e *Engine) finishTurn() {
	if e.over() || e.checkLastStanding() {
		return
	}
	e.state = StateResolvingLanding
	e.schedule(timerStep, stepAdvance, e.timing.TurnDelay)
}

// finishWith announces text and continues with the next turn once it shows
func (e *Engine) finishWith(text string) {
	if e.over() || e.checkLastStanding() {
		return
	}
	e.state = StateResolvingLanding
	e.then(text, stepAdvance, e.timing.TurnDelay)
}
