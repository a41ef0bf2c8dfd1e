package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
)

// Auction is the bidding state of an unowned property
type Auction struct {
	Space         *board.Space
	HighestBid    int
	HighestBidder *Player
}

func (e *Engine) offerPurchase(p *Player, space *board.Space) {
	e.state = StateAwaitingPurchase
	e.offer = space
	e.await(fmt.Sprintf("%s landed on %s (%s). Use `buy` to take it for %d, or `pass` to auction it.",
		p.Name, space.Name, space.Color, space.Cost), stepPurchaseTimeout, e.timing.PurchaseTimeout)
}

func (e *Engine) cmdBuy(p *Player) bool {
	if e.state != StateAwaitingPurchase || p != e.current || e.offer == nil {
		return false
	}
	space := e.offer
	if p.Currency < space.Cost {
		return false
	}

	e.cancelPending()
	e.offer = nil
	e.debit(p, space.Cost)
	e.award(p, space)

	e.finishWith(fmt.Sprintf("%s buys %s for %d.", p.Name, space.Name, space.Cost))
	e.checkPropertyWin(p)
	return true
}

func (e *Engine) cmdPass(p *Player) bool {
	if e.state != StateAwaitingPurchase || p != e.current || e.offer == nil {
		return false
	}
	e.declinePurchase(fmt.Sprintf("%s passes on %s.", p.Name, e.offer.Name))
	return true
}

func (e *Engine) purchaseTimedOut() {
	if e.state != StateAwaitingPurchase || e.offer == nil || e.current == nil {
		return
	}
	e.declinePurchase(fmt.Sprintf("%s didn't decide on %s in time.", e.current.Name, e.offer.Name))
}

func (e *Engine) declinePurchase(lead string) {
	space := e.offer
	e.offer = nil
	e.startAuction(space, lead)
}

func (e *Engine) startAuction(space *board.Space, lead string) {
	e.state = StateAuction
	e.auction = &Auction{Space: space}

	text := fmt.Sprintf("%s is up for auction! Use `bid <amount>` in steps of %d. Bidding closes %s after the last bid.",
		space.Name, e.rules.BidIncrement, e.timing.AuctionTimeout)
	if lead != "" {
		text = lead + " " + text
	}
	e.await(text, stepAuctionClose, e.timing.AuctionTimeout)
}

func (e *Engine) cmdBid(p *Player, args []string) bool {
	if e.state != StateAuction || e.auction == nil || p.Eliminated {
		return false
	}
	if len(args) != 1 {
		return false
	}
	amount, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || !e.validBid(p, amount) {
		return false
	}

	e.auction.HighestBid = amount
	e.auction.HighestBidder = p
	e.await(fmt.Sprintf("%s bids %d on %s.", p.Name, amount, e.auction.Space.Name), stepAuctionClose, e.timing.AuctionTimeout)
	return true
}

func (e *Engine) validBid(p *Player, amount int) bool {
	return amount > 0 &&
		amount > e.auction.HighestBid &&
		amount <= p.Currency &&
		amount%e.rules.BidIncrement == 0
}

func (e *Engine) closeAuction() {
	a := e.auction
	e.auction = nil
	if a == nil {
		e.finishTurn()
		return
	}

	winner := a.HighestBidder
	if winner == nil || winner.Eliminated || winner.Currency < a.HighestBid {
		e.finishWith(fmt.Sprintf("Nobody bought %s.", a.Space.Name))
		return
	}

	e.debit(winner, a.HighestBid)
	e.award(winner, a.Space)
	e.finishWith(fmt.Sprintf("%s wins %s for %d.", winner.Name, a.Space.Name, a.HighestBid))
	e.checkPropertyWin(winner)
}
