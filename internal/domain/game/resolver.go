package game

import (
	"fmt"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
)

// resolveLanding applies the space the current player stopped on
func (e *Engine) resolveLanding() {
	p := e.current
	if p == nil || p.Eliminated {
		e.finishTurn()
		return
	}

	e.state = StateResolvingLanding
	space := e.board.Space(p.Location)
	e.log.Debugf("%s landed on %s (%s)", p.Name, space.Name, space.Kind)

	switch space.Kind {
	case board.KindProperty, board.KindPropertyRent, board.KindPropertyElimination:
		e.landOnProperty(p, space)
	case board.KindRent:
		e.chargeRent(p, space, nil)
	case board.KindElimination:
		e.rollElimination(p, space, nil)
	case board.KindAction:
		e.drawCard(p)
	case board.KindGoToJail:
		e.sendToJail(p, fmt.Sprintf("%s landed on %s and goes to jail.", p.Name, space.Name))
	default:
		e.finishTurn()
	}
}

func (e *Engine) landOnProperty(p *Player, space *board.Space) {
	if !space.IsOwned() {
		if p.Currency >= space.Cost {
			e.offerPurchase(p, space)
			return
		}
		e.startAuction(space, fmt.Sprintf("%s can't afford %s (%d).", p.Name, space.Name, space.Cost))
		return
	}

	if p.Owns(space) {
		e.finishTurn()
		return
	}

	owner, ok := e.byID[space.Owner()]
	if !ok || owner.Eliminated {
		e.finishTurn()
		return
	}

	switch space.Kind {
	case board.KindPropertyRent:
		e.chargeRent(p, space, owner)
	case board.KindPropertyElimination:
		e.rollElimination(p, space, owner)
	default:
		e.finishTurn()
	}
}

// rentFor resolves the rent owed on space. With color aggregation every
// space of the color held by the same owner contributes.
func (e *Engine) rentFor(space *board.Space, owner *Player) int {
	if !e.rules.AggregateByColor || owner == nil {
		return space.Rent.Resolve(e.random.Intn)
	}

	total := 0
	for _, s := range e.board.ColorGroup(space.Color) {
		if s.Kind == space.Kind && owner.Owns(s) {
			total += s.Rent.Resolve(e.random.Intn)
		}
	}
	return total
}

// chanceFor resolves the elimination percentage of space, capped at 100
func (e *Engine) chanceFor(space *board.Space, owner *Player) int {
	chance := 0
	if !e.rules.AggregateByColor || owner == nil {
		chance = space.Chance.Resolve(e.random.Intn)
	} else {
		for _, s := range e.board.ColorGroup(space.Color) {
			if s.Kind == space.Kind && owner.Owns(s) {
				chance += s.Chance.Resolve(e.random.Intn)
			}
		}
	}
	if chance > 100 {
		return 100
	}
	return chance
}

// chargeRent makes p pay for landing on space. A nil owner means the bank.
func (e *Engine) chargeRent(p *Player, space *board.Space, owner *Player) {
	amount := e.rentFor(space, owner)
	if amount <= 0 {
		e.finishTurn()
		return
	}

	payee := "the bank"
	if owner != nil {
		payee = owner.Name
	}

	if p.Currency < amount {
		paid := e.pay(p, owner, amount)
		if e.over() {
			return
		}
		e.eliminate(p, owner, fmt.Sprintf("%s owes %d on %s but only has %d, pays it to %s and is eliminated.", p.Name, amount, space.Name, paid, payee))
		e.finishTurn()
		return
	}

	e.pay(p, owner, amount)
	if e.over() {
		return
	}
	e.finishWith(fmt.Sprintf("%s pays %d to %s for %s.", p.Name, amount, payee, space.Name))
}

func (e *Engine) rollElimination(p *Player, space *board.Space, owner *Player) {
	chance := e.chanceFor(space, owner)
	if chance <= 0 {
		e.finishTurn()
		return
	}

	if e.random.Intn(100) < chance {
		e.eliminate(p, owner, fmt.Sprintf("%s was caught by %s (%d%% chance) and is eliminated.", p.Name, space.Name, chance))
		e.finishTurn()
		return
	}
	e.finishWith(fmt.Sprintf("%s escaped %s (%d%% chance).", p.Name, space.Name, chance))
}

func (e *Engine) drawCard(p *Player) {
	card := e.deck.Draw()
	if card == nil {
		e.finishTurn()
		return
	}

	e.say(fmt.Sprintf("%s draws a card: %s", p.Name, card.Description()))
	relocated := card.Apply(e, p)
	if e.over() {
		return
	}

	switch {
	case p.Eliminated:
		e.finishTurn()
	case p.jailed:
		e.state = StateResolvingLanding
		e.then(fmt.Sprintf("%s is now in jail.", p.Name), stepAdvance, e.timing.CardDelay)
	case relocated:
		e.state = StateResolvingLanding
		e.then(fmt.Sprintf("%s is now on %s.", p.Name, e.board.Space(p.Location).Name), stepResolveLanding, e.timing.CardDelay)
	default:
		e.state = StateResolvingLanding
		e.then(fmt.Sprintf("%s now has %d.", p.Name, p.Currency), stepAdvance, e.timing.CardDelay)
	}
}
