package game

import (
	"fmt"
)

// CardEffect is one action card. Apply mutates the game for the player who
// drew it and reports whether the player's token was moved to a space that
// now needs resolving.
type CardEffect interface {
	Description() string
	Apply(e *Engine, p *Player) bool
}

// CollectCard pays the player from the bank
type CollectCard struct {
	Amount int
}

func (c CollectCard) Description() string {
	return fmt.Sprintf("Collect %d from the bank.", c.Amount)
}

func (c CollectCard) Apply(e *Engine, p *Player) bool {
	e.credit(p, c.Amount)
	return false
}

// PayCard charges the player. Players short of money pay what they have.
type PayCard struct {
	Amount int
}

func (c PayCard) Description() string {
	return fmt.Sprintf("Pay %d to the bank.", c.Amount)
}

func (c PayCard) Apply(e *Engine, p *Player) bool {
	e.debit(p, c.Amount)
	return false
}

// CollectFromEachCard takes an amount from every other remaining player
type CollectFromEachCard struct {
	Amount int
}

func (c CollectFromEachCard) Description() string {
	return fmt.Sprintf("Collect %d from every other player.", c.Amount)
}

func (c CollectFromEachCard) Apply(e *Engine, p *Player) bool {
	total := 0
	for _, other := range e.alive() {
		if other != p {
			total += e.debit(other, c.Amount)
		}
	}
	e.credit(p, total)
	return false
}

// PayEachCard pays an amount to every other remaining player
type PayEachCard struct {
	Amount int
}

func (c PayEachCard) Description() string {
	return fmt.Sprintf("Pay %d to every other player.", c.Amount)
}

func (c PayEachCard) Apply(e *Engine, p *Player) bool {
	for _, other := range e.alive() {
		if other == p {
			continue
		}
		e.pay(p, other, c.Amount)
		if e.over() {
			return false
		}
	}
	return false
}

// MoveCard moves the token forward, or backward for negative steps
type MoveCard struct {
	Steps int
}

func (c MoveCard) Description() string {
	if c.Steps < 0 {
		return fmt.Sprintf("Go back %d spaces.", -c.Steps)
	}
	return fmt.Sprintf("Move forward %d spaces.", c.Steps)
}

func (c MoveCard) Apply(e *Engine, p *Player) bool {
	if c.Steps == 0 {
		return false
	}
	e.sayNote(e.move(p, c.Steps))
	return true
}

// AdvanceToCard moves the token forward to a named space. Drawing it while
// already there takes a full lap.
type AdvanceToCard struct {
	Space string
}

func (c AdvanceToCard) Description() string {
	return fmt.Sprintf("Advance to %s.", c.Space)
}

func (c AdvanceToCard) Apply(e *Engine, p *Player) bool {
	target, ok := e.board.Locate(c.Space)
	if !ok {
		return false
	}
	steps := e.board.Distance(p.Location, target)
	if steps == 0 {
		steps = e.board.Len()
	}
	e.sayNote(e.move(p, steps))
	return true
}

// GoToJailCard sends the player straight to jail
type GoToJailCard struct{}

func (c GoToJailCard) Description() string {
	return "Go directly to jail."
}

func (c GoToJailCard) Apply(e *Engine, p *Player) bool {
	e.jail(p)
	return false
}

// EscapeTokenCard gives the player a token that gets them out of jail
type EscapeTokenCard struct{}

func (c EscapeTokenCard) Description() string {
	return "Keep this card to get out of jail for free."
}

func (c EscapeTokenCard) Apply(e *Engine, p *Player) bool {
	p.EscapeTokens++
	return false
}

func (e *Engine) sayNote(note string) {
	if note != "" && !e.over() {
		e.say(note)
	}
}

// Deck deals cards without replacement and reshuffles a fresh copy once
// every card has been drawn.
type Deck struct {
	cards  []CardEffect
	pile   []CardEffect
	random Randomizer
}

func NewDeck(cards []CardEffect, random Randomizer) *Deck {
	return &Deck{cards: cards, random: random}
}

// Draw returns the next card, or nil when the deck has no cards at all
func (d *Deck) Draw() CardEffect {
	if len(d.cards) == 0 {
		return nil
	}
	if len(d.pile) == 0 {
		d.reshuffle()
	}
	card := d.pile[0]
	d.pile = d.pile[1:]
	return card
}

// Remaining returns how many cards are left before the next reshuffle
func (d *Deck) Remaining() int {
	return len(d.pile)
}

func (d *Deck) reshuffle() {
	d.pile = make([]CardEffect, len(d.cards))
	copy(d.pile, d.cards)
	d.random.Shuffle(len(d.pile), func(i, j int) {
		d.pile[i], d.pile[j] = d.pile[j], d.pile[i]
	})
}
